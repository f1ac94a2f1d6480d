package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examprep/examprep-api/internal/config"
)

type testStruct struct {
	Name string
	Age  int
}

func setupTestCache(t *testing.T) *Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		Password:     "",
		DB:           0,
		User:         "",
	}

	c, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return c
}

func TestSetAndGet(t *testing.T) {
	c := setupTestCache(t)

	expected := testStruct{Name: "Alice", Age: 30}
	err := c.Set("user:1", expected, time.Minute)
	require.NoError(t, err)

	var actual testStruct
	found, err := c.Get("user:1", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetNotFound(t *testing.T) {
	c := setupTestCache(t)

	var out testStruct
	found, err := c.Get("no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	c := setupTestCache(t)

	require.NoError(t, c.Set("questions:Charges", []string{"q1"}, time.Minute))
	require.NoError(t, c.Invalidate("questions:Charges"))

	var out []string
	found, err := c.Get("questions:Charges", &out)
	require.NoError(t, err)
	assert.False(t, found)
}
