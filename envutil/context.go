package envutil

import (
	"context"
)

type envContextKey string

// WithEnvOverride returns a context in which the given key reads as value,
// regardless of the process environment. Readers that take a context consult
// overrides before os.LookupEnv, which keeps tests free of t.Setenv.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, envContextKey(key), value)
}

func getEnvOverride(ctx context.Context, key string) (string, bool) {
	if ctx == nil {
		return "", false
	}

	val, ok := ctx.Value(envContextKey(key)).(string)

	return val, ok
}
