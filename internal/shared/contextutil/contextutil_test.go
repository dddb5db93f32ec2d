package contextutil_test

import (
	"context"
	"testing"

	"freshbit/internal/domain"
	"freshbit/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, contextutil.GetRequestID(ctx))
	assert.Empty(t, contextutil.GetUserID(ctx))

	p := domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}
	ctx = contextutil.WithRequestID(ctx, "rid-1")
	ctx = contextutil.WithPrincipal(ctx, p)

	assert.Equal(t, "rid-1", contextutil.GetRequestID(ctx))
	assert.Equal(t, p.UserID.String(), contextutil.GetUserID(ctx))
	got, ok := contextutil.GetPrincipal(ctx)
	assert.True(t, ok)
	assert.Equal(t, p, got)
}

func TestGetLogger_Fallbacks(t *testing.T) {
	fallback := zap.NewExample()
	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	scoped := zap.NewExample().Named("scoped")
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))
}
