package styled

import (
	"errors"
	"fmt"
)

// Sentinel errors for styled operations.
var (
	ErrUndefinedTag    = errors.New("styled: cannot create a styled component from an undefined tag")
	ErrNoRenderContext = errors.New("styled: no render context in context.Context")
	ErrInvalidOptions  = errors.New("styled: invalid context options")
	ErrSnapshotKey     = errors.New("styled: snapshot was taken for a different cache key")
)

// ConfigurationError reports a fatal misconfiguration detected while
// building components or render contexts. It is not recoverable.
type ConfigurationError struct {
	Op  string
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError checks if err is or wraps a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsNoRenderContext checks if err is a missing render context error.
func IsNoRenderContext(err error) bool {
	return errors.Is(err, ErrNoRenderContext)
}
