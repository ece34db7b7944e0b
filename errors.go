package docqa

import (
	"errors"
	"fmt"
)

// ErrEmptyIndex is returned when a search runs against an index that holds
// no entries.
var ErrEmptyIndex = errors.New("index is empty")

// ConfigurationError reports an invalid construction-time parameter, such
// as a non-positive chunk size or an overlap not smaller than the window.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// NewConfigurationError creates a ConfigurationError for the given field.
func NewConfigurationError(field, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason}
}

// DimensionMismatchError reports a vector whose dimension differs from the
// dimension established by the rest of the index.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: want %d, got %d", e.Want, e.Got)
}

// ExternalServiceError wraps a failure from an external collaborator such
// as the embedding or generation service. Authentication, quota and timeout
// failures all surface through this one kind; the wrapped cause carries the
// detail.
type ExternalServiceError struct {
	Service string
	Op      string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Service, e.Op, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// WrapExternal wraps err as an ExternalServiceError unless it already is
// one, so adapters can annotate failures without double-wrapping.
func WrapExternal(service, op string, err error) error {
	if err == nil {
		return nil
	}
	var ese *ExternalServiceError
	if errors.As(err, &ese) {
		return err
	}
	return &ExternalServiceError{Service: service, Op: op, Err: err}
}
