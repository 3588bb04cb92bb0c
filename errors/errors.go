// Package errors holds the sentinel errors shared by the ternary packages.
package errors

import "errors"

var (
	// ErrOutOfRange is returned by the strict constructors when a value
	// cannot be represented by the target ternary type.
	ErrOutOfRange = errors.New("value out of range")

	// ErrUnknownOrder is returned when an ordering strategy name is not recognized.
	ErrUnknownOrder = errors.New("unknown ordering strategy")
)

// Collection gathers errors so a validation pass can report every problem
// instead of stopping at the first. The zero value is ready to use. It is not
// safe for concurrent use.
type Collection struct {
	errs []error
}

// Add records err. Nil is ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

// HasError reports whether anything was recorded.
func (c *Collection) HasError() bool {
	return len(c.errs) > 0
}

// GetError is nil for an empty collection, the error itself when there is
// exactly one, and an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	if len(c.errs) == 1 {
		return c.errs[0]
	}

	return errors.Join(c.errs...)
}
