package cache

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// closedAddr returns an address nothing listens on.
func closedAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestClient_NilIsMiss(t *testing.T) {
	t.Parallel()

	var c *Client
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"), time.Minute)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	c.Delete(ctx, "k")
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestClient_UnreachableRedisBehavesAsMiss(t *testing.T) {
	t.Parallel()

	c := New(closedAddr(t), "", 0, newTestLogger())
	t.Cleanup(func() { _ = c.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c.Set(ctx, "catalog:cards", []byte(`[]`), time.Minute)
	val, ok := c.Get(ctx, "catalog:cards")

	assert.False(t, ok)
	assert.Nil(t, val)
	assert.Error(t, c.Ping(ctx))
}
