package database

import (
	"context"
	"errors"
	"servicerequest-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func TestMongoHandle(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Collection Uses Configured Names", func(mt *mtest.T) {
		handle := NewMongoHandleFromClient(mt.Client, "HIS", "serviceRequest", zap.NewNop())

		collection, err := handle.Collection(context.Background())

		assert.NoError(mt, err)
		assert.Equal(mt, "serviceRequest", collection.Name())
		assert.Equal(mt, "HIS", collection.Database().Name())
	})

	mt.Run("Ping Succeeds", func(mt *mtest.T) {
		handle := NewMongoHandleFromClient(mt.Client, "HIS", "serviceRequest", zap.NewNop())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(mt, handle.Ping(context.Background()))
	})

	mt.Run("Ping Failure Is Infrastructure", func(mt *mtest.T) {
		handle := NewMongoHandleFromClient(mt.Client, "HIS", "serviceRequest", zap.NewNop())
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Name:    "InterruptedAtShutdown",
			Message: "interrupted at shutdown",
		}))

		err := handle.Ping(context.Background())

		assert.Error(mt, err)
		assert.True(mt, exceptions.IsKind(err, exceptions.KindInfrastructureFailure))
	})

	mt.Run("Wrapped Client Stays Healthy", func(mt *mtest.T) {
		handle := NewMongoHandleFromClient(mt.Client, "HIS", "serviceRequest", zap.NewNop())

		handle.MarkUnhealthy(context.DeadlineExceeded)
		_, err := handle.Collection(context.Background())

		assert.NoError(mt, err, "a handle without a connection URI cannot reconnect and keeps its client")
	})
}

const unreachableMongoURI = "mongodb://127.0.0.1:1"

// newUnreachableHandle returns a healthy handle whose client points at a
// port nothing listens on. The client itself never dials until used.
func newUnreachableHandle(t *testing.T) (*MongoHandle, *mongo.Client) {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(unreachableMongoURI))
	require.NoError(t, err)
	t.Cleanup(func() { client.Disconnect(context.Background()) })

	return &MongoHandle{
		client:         client,
		healthy:        true,
		connectionURI:  unreachableMongoURI,
		dbName:         "HIS",
		collectionName: "serviceRequest",
		connectTimeout: 300 * time.Millisecond,
		Log:            zap.NewNop(),
	}, client
}

func TestMongoHandleReconnect(t *testing.T) {
	t.Run("Query Error Leaves Handle Healthy", func(t *testing.T) {
		handle, client := newUnreachableHandle(t)

		handle.MarkUnhealthy(mongo.CommandError{Code: 11000, Name: "DuplicateKey"})
		collection, err := handle.Collection(context.Background())

		require.NoError(t, err)
		assert.True(t, handle.healthy)
		assert.Same(t, client, collection.Database().Client())
	})

	t.Run("Connectivity Error Re-establishes The Client", func(t *testing.T) {
		handle, staleClient := newUnreachableHandle(t)

		handle.MarkUnhealthy(mongo.ErrClientDisconnected)
		assert.False(t, handle.healthy)

		start := time.Now()
		collection, err := handle.Collection(context.Background())

		assert.Nil(t, collection)
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindInfrastructureFailure))
		assert.Less(t, time.Since(start), 5*time.Second)
		assert.False(t, handle.healthy)
		assert.Nil(t, handle.client)
		assert.ErrorIs(t, staleClient.Disconnect(context.Background()), mongo.ErrClientDisconnected, "stale client must already be released")
	})

	t.Run("Keeps Retrying While Unreachable", func(t *testing.T) {
		handle, _ := newUnreachableHandle(t)
		handle.MarkUnhealthy(context.DeadlineExceeded)

		_, firstErr := handle.Collection(context.Background())
		_, secondErr := handle.Collection(context.Background())

		assert.Error(t, firstErr)
		assert.Error(t, secondErr)
		assert.False(t, handle.healthy)
	})

	t.Run("Cancelled Request Still Releases Stale Client", func(t *testing.T) {
		handle, staleClient := newUnreachableHandle(t)
		handle.MarkUnhealthy(mongo.ErrClientDisconnected)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := handle.Collection(ctx)

		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindInfrastructureFailure))
		assert.Nil(t, handle.client)
		assert.ErrorIs(t, staleClient.Disconnect(context.Background()), mongo.ErrClientDisconnected)
	})
}

func TestIsConnectivityError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "Nil", err: nil, expected: false},
		{name: "Deadline", err: context.DeadlineExceeded, expected: true},
		{name: "Client Disconnected", err: mongo.ErrClientDisconnected, expected: true},
		{name: "Network Label", err: mongo.CommandError{Labels: []string{"NetworkError"}}, expected: true},
		{name: "Duplicate Key", err: mongo.CommandError{Code: 11000, Name: "DuplicateKey"}, expected: false},
		{name: "Plain Error", err: errors.New("boom"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isConnectivityError(tt.err))
		})
	}
}

func TestNewRedisClientDisabled(t *testing.T) {
	driverConfig := newDisabledRedisConfig()

	client, err := NewRedisClient(context.Background(), driverConfig, zap.NewNop())

	assert.NoError(t, err)
	assert.Nil(t, client)
}
