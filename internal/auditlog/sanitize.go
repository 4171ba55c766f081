package auditlog

import (
	"strings"

	"lighthouseservers/ptprov/internal/util"
)

var sensitiveFlags = map[string]struct{}{
	"--token":   {},
	"--api-key": {},
}

// sensitiveKeys are config keys whose value must not be stored when they
// appear as "config set <key> <value>".
var sensitiveKeys = map[string]struct{}{
	"api-key": {},
}

// SanitizeArgs redacts sensitive flag values for audit storage.
func SanitizeArgs(args []string) []string {
	sanitized := make([]string, 0, len(args))
	skipNext := false

	for i, arg := range args {
		if skipNext {
			sanitized = append(sanitized, "<redacted>")
			skipNext = false
			continue
		}

		if _, ok := sensitiveFlags[arg]; ok {
			sanitized = append(sanitized, arg)
			skipNext = true
			continue
		}

		if key, _, ok := strings.Cut(arg, "="); ok {
			if _, ok := sensitiveFlags[key]; ok {
				sanitized = append(sanitized, key+"=<redacted>")
				continue
			}
		}

		if _, ok := sensitiveKeys[util.NormalizeKey(arg)]; ok && i > 0 && args[i-1] == "set" {
			sanitized = append(sanitized, arg)
			skipNext = true
			continue
		}

		sanitized = append(sanitized, arg)
	}

	if skipNext {
		sanitized = append(sanitized, "<redacted>")
	}

	return sanitized
}
