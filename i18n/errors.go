package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Is(target error) bool
	Translate(lang language.Tag) string
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support.
//
// Example usage:
//
//	err := NewError("clitree.error.unknown_option")
//	err = err.WithArgs("--foo")
//	err = err.Wrap(originalError)
type TrError struct {
	// sentinel is shared by every copy derived from the same NewError call
	sentinel error
	key      string
	args     []interface{}
	wrapped  error
	bundle   *Bundle
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return NewErrorWithBundle(key, nil)
}

// NewErrorWithBundle creates a new translatable error bound to bundle. A nil
// bundle resolves to Default() lazily.
func NewErrorWithBundle(key string, bundle *Bundle) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
		bundle:   bundle,
	}
}

// Error returns the message in the bundle's default language, formatted with
// args if provided
func (e *TrError) Error() string {
	return e.Translate(e.getBundle().GetDefaultLanguage())
}

// Translate returns the message in lang.
func (e *TrError) Translate(lang language.Tag) string {
	msg := e.getBundle().TL(lang, e.key, e.args...)
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
		bundle:   e.bundle,
	}
}

// Wrap returns a new error that wraps another error
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
		bundle:   e.bundle,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

func (e *TrError) getBundle() *Bundle {
	if e.bundle != nil {
		return e.bundle
	}

	return Default()
}
