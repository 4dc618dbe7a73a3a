// Package scaffolderr defines the error taxonomy shared by the scaffolding pipeline.
package scaffolderr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidInput marks user input the pipeline cannot work with (blank names, bad enums).
var ErrInvalidInput = errors.New("invalid input")

// ErrAlreadyExists is returned by the materializer when the target file is present.
// Callers treat it as a warning, not a failure.
var ErrAlreadyExists = errors.New("file already exists")

// TemplateError reports a template that could not be located, parsed or executed.
type TemplateError struct {
	Template string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: %v", e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// FilesystemError reports a directory creation or write failure for a specific path.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// Invalid wraps ErrInvalidInput with a formatted message.
func Invalid(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}

// IsAlreadyExists reports whether err is (or wraps) ErrAlreadyExists.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsInvalidInput reports whether err is (or wraps) ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
