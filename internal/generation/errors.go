package generation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates the referenced template or document does not
// exist (or is soft-deleted).
var ErrNotFound = errors.New("not found")

// ErrRenderFailed indicates the template body could not be parsed or
// executed against the provided inputs.
var ErrRenderFailed = errors.New("render failed")

// MissingFieldsError reports every required field absent from the
// inputs, by label, in template declaration order.
type MissingFieldsError struct {
	Labels []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("Missing required fields: %s", strings.Join(e.Labels, ", "))
}
