package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Disconnecter is satisfied by the record store connection handle.
type Disconnecter interface {
	Disconnect(ctx context.Context) error
}

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        Disconnecter
	Redis          *redis.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.MongoDB != nil {
		err := b.MongoDB.Disconnect(ctx)
		if err != nil {
			return err
		}
		log.Println("Successfully closing MongoDB")
	}

	// Sync on stdout/stderr returns EINVAL on some platforms; not worth failing shutdown.
	b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
