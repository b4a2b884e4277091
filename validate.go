package xfix

import (
	"errors"
	"fmt"

	"github.com/mhr3/xfix/utf8"
)

// ErrInvalidUTF8 is returned by ValidateStrings for malformed input.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// InvalidUTF8Error reports the first string of a collection that is not
// valid UTF-8.
type InvalidUTF8Error struct {
	Index int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("%v: string at index %d", ErrInvalidUTF8, e.Index)
}

func (e *InvalidUTF8Error) Unwrap() error {
	return ErrInvalidUTF8
}

// ValidateStrings checks that every member of strs is valid UTF-8, the
// precondition of the string queries. The returned error is an
// *InvalidUTF8Error wrapping ErrInvalidUTF8.
func ValidateStrings[S ~string](strs []S) error {
	for i, s := range strs {
		if !utf8.ValidString(string(s)) {
			return &InvalidUTF8Error{Index: i}
		}
	}
	return nil
}
