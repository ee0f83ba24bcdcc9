package contextutil_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/JohanKruger/traindev-api/internal/shared/contextutil"
)

func TestGetLogger(t *testing.T) {
	t.Run("request-scoped logger wins", func(t *testing.T) {
		scoped := zap.NewNop().Named("scoped")
		ctx := contextutil.WithLogger(context.Background(), scoped)

		assert.Same(t, scoped, contextutil.GetLogger(ctx))
		assert.Same(t, scoped, contextutil.GetLogger(ctx, zap.NewNop()))
	})

	t.Run("falls back to the provided default", func(t *testing.T) {
		fallback := zap.NewNop().Named("fallback")

		assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	})

	t.Run("never returns nil", func(t *testing.T) {
		assert.NotNil(t, contextutil.GetLogger(context.Background()))
		assert.NotNil(t, contextutil.GetLogger(nil))
		assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
	})
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")

	assert.Equal(t, "rid-1", contextutil.GetRequestID(ctx))
	assert.Empty(t, contextutil.GetRequestID(context.Background()))
}

func TestUsernameRoundTrip(t *testing.T) {
	ctx := contextutil.WithUsername(context.Background(), "jkruger")

	assert.Equal(t, "jkruger", contextutil.GetUsername(ctx))
	assert.Empty(t, contextutil.GetUsername(context.Background()))
}
