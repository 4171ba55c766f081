package tui

import (
	"context"
	"errors"
	"io"
	"os"

	"lighthouseservers/ptprov/internal/provision"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// SpinnerActivity returns a provision.Activity that shows a spinner on out
// while a panel call runs. Aborting the spinner cancels the call and is
// reported as provision.ErrCancelled.
func SpinnerActivity(out io.Writer) provision.Activity {
	accessible := os.Getenv("ACCESSIBLE") != ""

	return func(ctx context.Context, title string, fn func(ctx context.Context) error) error {
		err := spinner.New().
			Title(title).
			Accessible(accessible).
			Output(out).
			ActionWithErr(func(spinCtx context.Context) error {
				runCtx, cancel := context.WithCancel(ctx)
				defer cancel()
				stop := context.AfterFunc(spinCtx, cancel)
				defer stop()
				return fn(runCtx)
			}).
			Run()
		if errors.Is(err, huh.ErrUserAborted) {
			return provision.ErrCancelled
		}
		return err
	}
}
