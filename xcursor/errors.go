package xcursor

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches one of these
// with errors.Is.
var (
	ErrConfigParse        = errors.New("config parse error")
	ErrImageDecode        = errors.New("image decode error")
	ErrFileNotFound       = errors.New("file not found")
	ErrUnsupportedFormat  = errors.New("unsupported image format")
	ErrImageTooLarge      = errors.New("image too large")
	ErrHotspotOutOfBounds = errors.New("hotspot out of bounds")
	ErrPixelCountMismatch = errors.New("pixel count mismatch")
	ErrIO                 = errors.New("i/o error")
	ErrInvalidFile        = errors.New("invalid xcursor file")
)

// ConfigError reports a malformed frame list record.
type ConfigError struct {
	Path string
	Line int
	Err  error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Path == "":
		return e.Err.Error()
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

func (e *ConfigError) Unwrap() []error {
	return []error{ErrConfigParse, e.Err}
}

// DecodeError reports a PNG that could not be turned into an Image.
// Kind is ErrFileNotFound, ErrUnsupportedFormat or nil for a corrupt file.
type DecodeError struct {
	Path string
	Kind error
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	errs := []error{ErrImageDecode}
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	return append(errs, e.Err)
}

// ValidationError reports an image rejected before encoding.
type ValidationError struct {
	Path   string
	Kind   error
	Detail string
}

func (e *ValidationError) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func ioError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}
