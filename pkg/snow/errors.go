package snow

import (
	"errors"
	"fmt"
)

// Sentinels for invalid stepper inputs; match with errors.Is.
var (
	ErrWidth  = errors.New("snow: width too small")
	ErrHeight = errors.New("snow: height too small")
	ErrBuffer = errors.New("snow: cell buffer too small")
	ErrPixels = errors.New("snow: pixel buffer too small")
)

const (
	minWidth  = 3
	minHeight = 2
)

// ConfigError reports a dimension or buffer precondition the caller violated.
type ConfigError struct {
	Field string
	Got   int
	Want  int
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("snow: invalid %s: got %d, need %d", e.Field, e.Got, e.Want)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func validateSize(w, h int) error {
	if w < minWidth {
		return &ConfigError{Field: "width", Got: w, Want: minWidth, Err: ErrWidth}
	}
	if h < minHeight {
		return &ConfigError{Field: "height", Got: h, Want: minHeight, Err: ErrHeight}
	}
	return nil
}

func validate(buf []uint32, w, h int) error {
	if err := validateSize(w, h); err != nil {
		return err
	}
	if len(buf) < w*h {
		return &ConfigError{Field: "buffer length", Got: len(buf), Want: w * h, Err: ErrBuffer}
	}
	return nil
}

func validatePixels(pixels []uint32, w, h int) error {
	if len(pixels) < w*h {
		return &ConfigError{Field: "pixel buffer length", Got: len(pixels), Want: w * h, Err: ErrPixels}
	}
	return nil
}
