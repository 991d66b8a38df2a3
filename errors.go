package num

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("num")

// ErrSyntax is wrapped by every error caused by text that is not a number.
var ErrSyntax = errors.New("invalid syntax")

func syntaxError(kind string, s string) error {
	return Error.Wrap(fmt.Errorf("%s string %q: %w", kind, s, ErrSyntax))
}
