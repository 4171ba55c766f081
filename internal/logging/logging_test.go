package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug().Msg("debug message")
	log.Info().Msg("info message")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn level, got: %s", buf.String())
	}

	log.Warn().Msg("warn message")
	if !strings.Contains(buf.String(), "warn message") {
		t.Errorf("expected warn message in output, got: %s", buf.String())
	}
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debug().Str("path", "/api/application/users").Msg("panel request")

	output := buf.String()
	if !strings.Contains(output, "panel request") {
		t.Errorf("expected debug message in verbose output, got: %s", output)
	}
	if !strings.Contains(output, "/api/application/users") {
		t.Errorf("expected field value in output, got: %s", output)
	}
}
