// Package suggest formats raw suggestion-service responses for display.
package suggest

import (
	"regexp"
	"strings"

	"taskdeck/internal/task"
)

// ordinalPrefix matches a numbered list-item prefix: digits, a period,
// one whitespace character.
var ordinalPrefix = regexp.MustCompile(`\d+\.\s`)

// Format normalizes raw suggestion text for the terminal. The steps are
// order-sensitive: emphasis markers are stripped first, then numbered
// list prefixes become bulleted lines, then the result is trimmed.
// Already-clean input passes through unchanged.
func Format(raw string) string {
	out := strings.ReplaceAll(raw, "**", "")
	out = ordinalPrefix.ReplaceAllString(out, "\n• ")
	return strings.TrimSpace(out)
}

// FailedMessage is shown in place of a suggestion when the request fails.
const FailedMessage = "Could not load a suggestion. Please try again later."

// ErrorResult returns the placeholder displayed for a failed request.
func ErrorResult() task.Suggestion {
	return task.Suggestion{For: "Error", Text: FailedMessage}
}
