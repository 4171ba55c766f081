package tui

import (
	"fmt"
	"strings"

	"lighthouseservers/ptprov/internal/provision"
	"lighthouseservers/ptprov/internal/tui/styles"
)

// RenderResult formats a completed provisioning run as a bordered card.
func RenderResult(res *provision.Result) string {
	if res == nil || res.Server == nil {
		return ""
	}

	owner := fmt.Sprintf("%s (ID %d)", res.Identity.FirstName, res.Identity.UserID)
	if res.UserCreated {
		owner += " " + styles.MutedText.Render("new")
	}

	rows := [][2]string{
		{"Server", res.Server.Name},
		{"Server ID", fmt.Sprintf("%d", res.Server.ID)},
		{"Identifier", orDash(res.Server.Identifier)},
		{"Owner", owner},
		{"Node", fmt.Sprintf("%s (%s)", res.Node.Name, res.Node.Address)},
		{"Ports", fmt.Sprintf("%d, %d", res.Pair.Primary.Port, res.Pair.Secondary.Port)},
	}

	var b strings.Builder
	b.WriteString(styles.SuccessText.Render("Server provisioned"))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(styles.Label.Render(fmt.Sprintf("%-11s", r[0])))
		b.WriteString(" ")
		b.WriteString(styles.Value.Render(r[1]))
	}
	return styles.Card.Render(b.String())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
