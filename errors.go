package readably

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers use errors.Is against these, never string
// matching on Error() text.
var (
	ErrInvalidURL     = errors.New("readably: invalid url")
	ErrDecodingFailed = errors.New("readably: response bytes are not valid utf-8")
	ErrParsingFailed  = errors.New("readably: html could not be parsed or yielded no candidate")
	ErrUnknownError   = errors.New("readably: unknown error")
)

// errNoCandidate is the underlying cause wrapped into ErrParsingFailed when
// no candidate element of at least the minimum text length scores above 0.
var errNoCandidate = errors.New("no candidate element survived scoring")

// wrapErr wraps err with kind so errors.Is(wrapped, kind) holds, while still
// carrying the original error's text and chain. Go 1.20+ lets Errorf wrap
// more than one error, so both kind and err remain matchable via errors.Is.
func wrapErr(kind error, funcName string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", funcName, kind, err)
}
