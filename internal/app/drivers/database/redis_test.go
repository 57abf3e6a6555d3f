package database

import (
	"context"
	"servicerequest-service/internal/app/config"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDisabledRedisConfig() *config.DriverConfig {
	return &config.DriverConfig{}
}

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)

	driverConfig := &config.DriverConfig{
		Redis: config.Redis{
			Host: server.Host(),
			Port: server.Port(),
		},
	}

	client, err := NewRedisClient(context.Background(), driverConfig, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, client)
	defer client.Close()

	assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	value, err := server.Get("k")
	assert.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestNewRedisClientUnreachable(t *testing.T) {
	server := miniredis.RunT(t)
	host, port := server.Host(), server.Port()
	server.Close()

	driverConfig := &config.DriverConfig{
		Redis: config.Redis{Host: host, Port: port},
	}

	client, err := NewRedisClient(context.Background(), driverConfig, zap.NewNop())

	assert.Error(t, err)
	assert.Nil(t, client)
}
