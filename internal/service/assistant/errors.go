package assistant

import (
	"errors"
	"fmt"

	"github.com/sandevgo/jotbot/internal/core"
)

// UserFacingError renders an error as the short reply a transport
// sends back. Every error recovers at the interaction boundary; none
// ends the session.
func UserFacingError(err error) string {
	var timeErr *core.TimeParseError
	if errors.As(err, &timeErr) {
		return fmt.Sprintf("I couldn't work out when %q is, so I didn't save the reminder. Try something like \"tomorrow at 2pm\".", timeErr.Phrase)
	}

	var classErr *core.ClassificationError
	if errors.As(err, &classErr) {
		return "Sorry, I couldn't make sense of that. Nothing was saved."
	}

	if errors.Is(err, core.ErrEmptyInput) {
		return "Say something first."
	}

	return fmt.Sprintf("error: %v", err)
}
