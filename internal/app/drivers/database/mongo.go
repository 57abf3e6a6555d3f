package database

import (
	"context"
	"errors"
	"servicerequest-service/internal/app/config"
	"servicerequest-service/internal/pkg/constvars"
	"servicerequest-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	defaultConnectTimeout = 10 * time.Second
	disconnectTimeout     = 5 * time.Second
)

// MongoHandle owns the process-wide MongoDB client. It is created once at
// startup and hands out the record collection, re-establishing the client
// after an operation reported a connectivity failure.
type MongoHandle struct {
	mu             sync.Mutex
	client         *mongo.Client
	healthy        bool
	connectionURI  string
	dbName         string
	collectionName string
	connectTimeout time.Duration
	Log            *zap.Logger
}

// NewMongoDB connects and pings once. A failure here is fatal for callers.
func NewMongoDB(ctx context.Context, driverConfig *config.DriverConfig, logger *zap.Logger) (*MongoHandle, error) {
	handle := &MongoHandle{
		connectionURI:  driverConfig.MongoDB.ConnectionString(),
		dbName:         driverConfig.MongoDB.DbName,
		collectionName: driverConfig.MongoDB.Collection,
		connectTimeout: time.Duration(driverConfig.MongoDB.ConnectTimeoutInSeconds) * time.Second,
		Log:            logger,
	}

	handle.mu.Lock()
	defer handle.mu.Unlock()
	err := handle.connect(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info("Successfully connected to mongo database",
		zap.String(constvars.LoggingDatabaseNameKey, handle.dbName),
		zap.String(constvars.LoggingCollectionNameKey, handle.collectionName),
	)
	return handle, nil
}

// NewMongoHandleFromClient wraps an already connected client.
func NewMongoHandleFromClient(client *mongo.Client, dbName, collectionName string, logger *zap.Logger) *MongoHandle {
	return &MongoHandle{
		client:         client,
		healthy:        true,
		dbName:         dbName,
		collectionName: collectionName,
		Log:            logger,
	}
}

// Collection returns the record collection, reconnecting first when a
// previous operation marked the handle unhealthy.
func (h *MongoHandle) Collection(ctx context.Context) (*mongo.Collection, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.healthy {
		h.Log.Warn("MongoHandle.Collection re-establishing connection",
			zap.String(constvars.LoggingDatabaseNameKey, h.dbName),
		)
		if h.client != nil {
			h.disconnectStale(h.client)
			h.client = nil
		}
		err := h.connect(ctx)
		if err != nil {
			return nil, err
		}
	}

	return h.client.Database(h.dbName).Collection(h.collectionName), nil
}

// MarkUnhealthy flags the handle for reconnection when err is a
// connectivity failure. Other errors are ignored.
func (h *MongoHandle) MarkUnhealthy(err error) {
	if !isConnectivityError(err) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.connectionURI == "" {
		return
	}
	h.healthy = false
	h.Log.Warn("MongoHandle.MarkUnhealthy connection flagged for re-establishment",
		zap.Error(err),
	)
}

func (h *MongoHandle) Ping(ctx context.Context) error {
	h.mu.Lock()
	client := h.client
	h.mu.Unlock()

	if client == nil {
		return exceptions.ErrMongoDBConnection(mongo.ErrClientDisconnected)
	}
	err := client.Ping(ctx, readpref.Primary())
	if err != nil {
		h.MarkUnhealthy(err)
		return exceptions.ErrMongoDBConnection(err)
	}
	return nil
}

func (h *MongoHandle) Disconnect(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.client == nil {
		return nil
	}
	err := h.client.Disconnect(ctx)
	h.client = nil
	h.healthy = false
	return err
}

func (h *MongoHandle) DatabaseName() string {
	return h.dbName
}

func (h *MongoHandle) CollectionName() string {
	return h.collectionName
}

// connect must be called with mu held.
func (h *MongoHandle) connect(ctx context.Context) error {
	if h.connectTimeout <= 0 {
		h.connectTimeout = defaultConnectTimeout
	}
	connectCtx, cancel := context.WithTimeout(ctx, h.connectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(h.connectionURI).
		SetServerSelectionTimeout(h.connectTimeout)
	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return exceptions.ErrMongoDBConnection(err)
	}

	err = client.Ping(connectCtx, readpref.Primary())
	if err != nil {
		h.disconnectStale(client)
		return exceptions.ErrMongoDBConnection(err)
	}

	h.client = client
	h.healthy = true
	return nil
}

// disconnectStale releases a client that is being replaced. It does not use
// the caller's context, which may already be cancelled.
func (h *MongoHandle) disconnectStale(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	err := client.Disconnect(ctx)
	if err != nil && !errors.Is(err, mongo.ErrClientDisconnected) {
		h.Log.Warn("MongoHandle.disconnectStale failed to release client",
			zap.String(constvars.LoggingDatabaseNameKey, h.dbName),
			zap.Error(err),
		)
	}
}

func isConnectivityError(err error) bool {
	if err == nil {
		return false
	}
	return mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected)
}
