package wizard

import (
	"errors"
	"fmt"
)

// CanceledError reports that the user abandoned the wizard at a step.
// It is informational, not a failure: nothing was downloaded or written.
type CanceledError struct {
	Step string
}

func (e *CanceledError) Error() string {
	return fmt.Sprintf("project generation canceled: no %s selected", e.Step)
}

// IsCanceled reports whether err is a user cancellation.
func IsCanceled(err error) bool {
	var ce *CanceledError
	return errors.As(err, &ce)
}

func canceled(step string) error {
	return &CanceledError{Step: step}
}
