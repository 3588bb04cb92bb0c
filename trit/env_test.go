package trit

import (
	"testing"

	"github.com/amp-labs/amp-ternary/envutil"
	"github.com/amp-labs/amp-ternary/logger"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
)

func TestOrderFromEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		key   string
		value *string
		want  Order
	}{
		{name: "unset defaults to natural", key: "TERNARY_TEST_ORDER_UNSET", want: OrderNatural},
		{name: "legacy", key: "TERNARY_TEST_ORDER", value: ptr("legacy"), want: OrderLegacy},
		{name: "natural", key: "TERNARY_TEST_ORDER", value: ptr("natural"), want: OrderNatural},
		{name: "garbage falls back", key: "TERNARY_TEST_ORDER", value: ptr("sideways"), want: OrderNatural},
		{name: "default key", key: "", value: ptr("legacy"), want: OrderLegacy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := logger.WithLogger(t.Context(), slogt.New(t))

			if tt.value != nil {
				key := tt.key
				if key == "" {
					key = OrderEnvKey
				}

				ctx = envutil.WithEnvOverride(ctx, key, *tt.value)
			}

			assert.Equal(t, tt.want, OrderFromEnv(ctx, tt.key))
		})
	}
}

func ptr(s string) *string {
	return &s
}
