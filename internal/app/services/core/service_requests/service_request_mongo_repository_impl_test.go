package service_requests

import (
	"context"
	"servicerequest-service/internal/app/drivers/database"
	"servicerequest-service/internal/app/models"
	"servicerequest-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

const testNamespace = "HIS.serviceRequest"

func newMockRepository(mt *mtest.T) *serviceRequestMongoRepository {
	handle := database.NewMongoHandleFromClient(mt.Client, "HIS", "serviceRequest", zap.NewNop())
	return NewServiceRequestMongoRepository(handle, zap.NewNop()).(*serviceRequestMongoRepository)
}

func TestServiceRequestMongoRepository_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("Returns Generated ObjectID", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := repo.Insert(ctx, models.ServiceRequest{
			"resourceType": "ServiceRequest",
			"status":       "active",
		})

		require.NoError(mt, err)
		_, parseErr := primitive.ObjectIDFromHex(id)
		assert.NoError(mt, parseErr, "identifier should be an ObjectID in hex form")
	})

	mt.Run("Ignores Caller Identifiers", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := repo.Insert(ctx, models.ServiceRequest{"id": "not-an-object-id", "status": "active"})

		require.NoError(mt, err)
		assert.NotEqual(mt, "not-an-object-id", id)

		sent := mt.GetStartedEvent().Command
		documents, ok := sent.Lookup("documents").ArrayOK()
		require.True(mt, ok)
		first, err := documents.IndexErr(0)
		require.NoError(mt, err)
		_, lookupErr := first.Value().Document().LookupErr("id")
		assert.Error(mt, lookupErr, "id must not be stored as a field")
	})

	mt.Run("Write Error Is Infrastructure", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.Insert(ctx, models.ServiceRequest{"status": "active"})

		require.Error(mt, err)
		assert.True(mt, exceptions.IsKind(err, exceptions.KindInfrastructureFailure))
	})
}

func TestServiceRequestMongoRepository_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	objectID := primitive.NewObjectID()

	mt.Run("Found", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: objectID},
			{Key: "resourceType", Value: "ServiceRequest"},
			{Key: "status", Value: "active"},
			{Key: "subject", Value: bson.D{{Key: "reference", Value: "Patient/123"}}},
			{Key: "note", Value: bson.A{bson.D{{Key: "text", Value: "fasting"}}}},
		}))

		record, err := repo.FindByID(ctx, objectID.Hex())

		require.NoError(mt, err)
		require.NotNil(mt, record)
		assert.Equal(mt, objectID.Hex(), record.ID())
		assert.NotContains(mt, record, "_id")
		assert.Equal(mt, map[string]interface{}{"reference": "Patient/123"}, record["subject"])
		assert.Equal(mt, []interface{}{map[string]interface{}{"text": "fasting"}}, record["note"])
	})

	mt.Run("Absent", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch))

		record, err := repo.FindByID(ctx, objectID.Hex())

		assert.NoError(mt, err)
		assert.Nil(mt, record)
	})

	mt.Run("Invalid Identifiers", func(mt *mtest.T) {
		repo := newMockRepository(mt)

		for _, id := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", objectID.Hex() + "00"} {
			record, err := repo.FindByID(ctx, id)

			assert.Nil(mt, record)
			assert.True(mt, exceptions.IsKind(err, exceptions.KindInvalidIdentifier), "id %q", id)
		}
	})

	mt.Run("Driver Error Is Infrastructure", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad value",
		}))

		_, err := repo.FindByID(ctx, objectID.Hex())

		assert.True(mt, exceptions.IsKind(err, exceptions.KindInfrastructureFailure))
	})
}

func TestServiceRequestMongoRepository_FindByPatientIdentifier(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("Matches System And Value", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		objectID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: objectID},
			{Key: "patientIdentifier", Value: bson.D{
				{Key: "system", Value: "doc"},
				{Key: "value", Value: "999"},
			}},
		}))

		record, err := repo.FindByPatientIdentifier(ctx, "doc", "999")

		require.NoError(mt, err)
		identifier, ok := record.PatientIdentifier()
		assert.True(mt, ok)
		assert.Equal(mt, models.PatientIdentifier{System: "doc", Value: "999"}, identifier)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		assert.Equal(mt, "doc", filter.Lookup("patientIdentifier.system").StringValue())
		assert.Equal(mt, "999", filter.Lookup("patientIdentifier.value").StringValue())
	})

	mt.Run("Absent", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch))

		record, err := repo.FindByPatientIdentifier(ctx, "doc", "000")

		assert.NoError(mt, err)
		assert.Nil(mt, record)
	})
}

func TestServiceRequestMongoRepository_FindAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("Returns Every Record", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: first}, {Key: "status", Value: "active"}},
			bson.D{{Key: "_id", Value: second}, {Key: "status", Value: "draft"}},
		))

		records, err := repo.FindAll(ctx)

		require.NoError(mt, err)
		require.Len(mt, records, 2)
		assert.Equal(mt, first.Hex(), records[0].ID())
		assert.Equal(mt, second.Hex(), records[1].ID())
	})

	mt.Run("Empty Collection", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch))

		records, err := repo.FindAll(ctx)

		require.NoError(mt, err)
		assert.NotNil(mt, records)
		assert.Empty(mt, records)
	})

	mt.Run("Driver Error Is Infrastructure", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		_, err := repo.FindAll(ctx)

		assert.True(mt, exceptions.IsKind(err, exceptions.KindInfrastructureFailure))
	})
}

func TestServiceRequestMongoRepository_EnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Creates Lookup Index", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.EnsureIndexes(context.Background())

		require.NoError(mt, err)
		started := mt.GetStartedEvent()
		assert.Equal(mt, "createIndexes", started.CommandName)
	})
}
