package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader wraps a value read from an environment variable together with
// whether it was present and any error produced while transforming it.
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

// Key is the variable name the Reader was built from.
func (e Reader[A]) Key() string {
	return e.key
}

// Value returns the parsed value. Parse failures wrap ErrBadEnvVar and an
// unset variable without a default wraps ErrEnvVarMissing.
func (e Reader[A]) Value() (A, error) { //nolint:ireturn
	switch {
	case e.err != nil:
		return e.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, e.key, e.err)
	case !e.present:
		return e.value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	default:
		return e.value, nil
	}
}

// ValueOrFatal is Value for process startup: any error is logged and the
// process exits with status 1.
func (e Reader[A]) ValueOrFatal() A { //nolint:ireturn
	value, err := e.Value()
	if err != nil {
		slog.Error("error reading environment variable", "key", e.key, "error", err)
		os.Exit(1)
	}

	return value
}

// WithDefault fills in v for an unset variable and leaves set ones untouched.
func (e Reader[A]) WithDefault(v A) Reader[A] { //nolint:ireturn
	if e.present {
		return e
	}

	e.present = true
	e.value = v

	return e
}

// Map parses or converts the value with f. Unset and failed Readers pass
// through unchanged apart from their type; f is only called on a good value.
func Map[A any, B any](env Reader[A], f func(A) (B, error)) Reader[B] {
	out := Reader[B]{
		key:     env.key,
		present: env.present,
		err:     env.err,
	}

	if !env.present || env.err != nil {
		return out
	}

	out.value, out.err = f(env.value)

	return out
}
