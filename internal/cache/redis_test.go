package cache

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRedisLoadSave needs a live server; set CARIOCA_TEST_REDIS_ADDR to run it.
func TestRedisLoadSave(t *testing.T) {
	addr := os.Getenv("CARIOCA_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("CARIOCA_TEST_REDIS_ADDR not set")
	}
	s, err := ConnectRedis(addr, 0)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	key := "carioca-test-" + uuid.NewString()
	defer s.Rdb.Del(ctx, key)

	_, ok, err := s.Load(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(ctx, key, "en"))
	v, ok, err := s.Load(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "en", v)
}
