package update

import (
	"strings"
	"time"

	"github.com/sandeepkv93/focusgarden/internal/progress"
)

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func dayOf(t time.Time) string {
	return progress.Day(t)
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
