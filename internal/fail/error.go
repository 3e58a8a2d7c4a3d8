// Package fail renders startup errors with suggested fixes. Failures that
// happen once the session is running never go through here; those follow
// the in-session rules (banner for the initial load, diagnostic log for
// mutations).
package fail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorSymbol = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			SetString("✗").
			String()

	infoSymbol = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true).
			SetString("ⓘ").
			String()

	boldStyle = lipgloss.NewStyle().Bold(true)
)

// UserError is an error with a user-facing message and concrete solutions.
type UserError struct {
	Cause       error
	UserMessage string
	Solutions   []string
	TechDetails string
}

func (e *UserError) Error() string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("%s %s\n", errorSymbol, boldStyle.Render(e.UserMessage)))

	if len(e.Solutions) > 0 {
		msg.WriteString(fmt.Sprintf("\n%s Try these solutions:\n", infoSymbol))
		for i, solution := range e.Solutions {
			msg.WriteString(fmt.Sprintf("  %d. %s\n", i+1, solution))
		}
	}

	if e.TechDetails != "" {
		msg.WriteString(fmt.Sprintf("\nTechnical details: %s\n", e.TechDetails))
	}

	return msg.String()
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// NewNoAPIURLError explains how to point the client at a task service.
func NewNoAPIURLError(configPath string) *UserError {
	return &UserError{
		UserMessage: "No task service configured",
		Solutions: []string{
			fmt.Sprintf("Set api_url in %s", configPath),
			"Or export TASKDECK_API_URL=http://localhost:8000",
			"Or pass --api-url on the command line",
		},
	}
}

// NewConfigError wraps a configuration file problem.
func NewConfigError(configPath string, err error) *UserError {
	return &UserError{
		Cause:       err,
		UserMessage: "Could not read the configuration file",
		Solutions: []string{
			fmt.Sprintf("Check that %s is valid yaml", configPath),
			"Remove the file to start from defaults",
		},
		TechDetails: err.Error(),
	}
}

// NewBadAPIURLError wraps an unusable base URL.
func NewBadAPIURLError(baseURL string, err error) *UserError {
	return &UserError{
		Cause:       err,
		UserMessage: fmt.Sprintf("The task service address %q is not usable", baseURL),
		Solutions: []string{
			"Use a full base URL such as http://localhost:8000",
			"Check TASKDECK_API_URL and the --api-url flag for typos",
		},
		TechDetails: err.Error(),
	}
}
