package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStatus(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, RedisStatusDisabled, RedisStatus(ctx, nil))

	mr := miniredis.RunT(t)
	client, err := NewRedisClient(ctx, mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, RedisStatusOK, RedisStatus(ctx, client))

	mr.SetError("ERR simulated outage")
	assert.Equal(t, RedisStatusDown, RedisStatus(ctx, client))
}

func TestNewRedisClientUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(context.Background(), addr)
	assert.Error(t, err)
}

func TestNewAsynqClientDisabled(t *testing.T) {
	assert.Nil(t, NewAsynqClient(""))
}
