package trit

import (
	"context"

	"github.com/amp-labs/amp-ternary/envutil"
	"github.com/amp-labs/amp-ternary/logger"
)

// OrderEnvKey is the environment variable read by OrderFromEnv when no key is given.
const OrderEnvKey = "TERNARY_TRIT_ORDER"

// OrderFromEnv reads an ordering strategy name ("natural" or "legacy") from
// the environment. An empty key means OrderEnvKey. A missing variable yields
// OrderNatural; an unrecognized one is logged and also yields OrderNatural.
func OrderFromEnv(ctx context.Context, key string) Order {
	if key == "" {
		key = OrderEnvKey
	}

	rdr := envutil.Map(envutil.String(ctx, key), ParseOrder)

	order, err := rdr.WithDefault(OrderNatural).Value()
	if err != nil {
		logger.Get(ctx).Warn("invalid trit ordering, using natural order",
			"key", key, "error", err)

		return OrderNatural
	}

	logger.Get(ctx).Debug("resolved trit ordering", "key", key, "order", order.String())

	return order
}
