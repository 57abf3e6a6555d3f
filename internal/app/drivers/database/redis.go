package database

import (
	"context"
	"servicerequest-service/internal/app/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient returns nil when no Redis host is configured.
func NewRedisClient(ctx context.Context, driverConfig *config.DriverConfig, logger *zap.Logger) (*redis.Client, error) {
	if !driverConfig.Redis.Enabled() {
		logger.Info("Redis host not configured, record cache disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     driverConfig.Redis.Addr(),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	logger.Info("Successfully connected to redis",
		zap.String("addr", driverConfig.Redis.Addr()),
	)
	return rdb, nil
}
