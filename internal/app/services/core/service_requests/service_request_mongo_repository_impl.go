package service_requests

import (
	"context"
	"servicerequest-service/internal/app/contracts"
	"servicerequest-service/internal/app/models"
	"servicerequest-service/internal/pkg/constvars"
	"servicerequest-service/internal/pkg/exceptions"
	"servicerequest-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CollectionProvider hands out the record collection and is told about
// failures so it can re-establish the connection.
type CollectionProvider interface {
	Collection(ctx context.Context) (*mongo.Collection, error)
	MarkUnhealthy(err error)
}

type serviceRequestMongoRepository struct {
	Mongo CollectionProvider
	Log   *zap.Logger
}

func NewServiceRequestMongoRepository(collectionProvider CollectionProvider, logger *zap.Logger) contracts.ServiceRequestRepository {
	return &serviceRequestMongoRepository{
		Mongo: collectionProvider,
		Log:   logger,
	}
}

func (repo *serviceRequestMongoRepository) Insert(ctx context.Context, serviceRequest models.ServiceRequest) (string, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("serviceRequestMongoRepository.Insert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	collection, err := repo.Mongo.Collection(ctx)
	if err != nil {
		return "", err
	}

	document := bson.M{}
	for key, value := range serviceRequest {
		if key == constvars.FieldID || key == constvars.FieldMongoID {
			continue
		}
		document[key] = value
	}

	result, err := collection.InsertOne(ctx, document)
	if err != nil {
		repo.Mongo.MarkUnhealthy(err)
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBUnexpectedInsertedID(nil)
	}

	repo.Log.Info("serviceRequestMongoRepository.Insert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceRequestIDKey, objectID.Hex()),
	)
	return objectID.Hex(), nil
}

func (repo *serviceRequestMongoRepository) FindByID(ctx context.Context, serviceRequestID string) (models.ServiceRequest, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("serviceRequestMongoRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceRequestIDKey, serviceRequestID),
	)

	objectID, err := primitive.ObjectIDFromHex(serviceRequestID)
	if err != nil {
		return nil, exceptions.ErrInvalidIdentifier(err)
	}

	return repo.findOne(ctx, bson.M{constvars.FieldMongoID: objectID})
}

func (repo *serviceRequestMongoRepository) FindByPatientIdentifier(ctx context.Context, system, value string) (models.ServiceRequest, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("serviceRequestMongoRepository.FindByPatientIdentifier called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientSystemKey, system),
	)

	filter := bson.M{
		constvars.FieldPatientIdentifierSystem: system,
		constvars.FieldPatientIdentifierValue:  value,
	}
	return repo.findOne(ctx, filter)
}

func (repo *serviceRequestMongoRepository) FindAll(ctx context.Context) ([]models.ServiceRequest, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("serviceRequestMongoRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	collection, err := repo.Mongo.Collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		repo.Mongo.MarkUnhealthy(err)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var documents []bson.M
	err = cursor.All(ctx, &documents)
	if err != nil {
		repo.Mongo.MarkUnhealthy(err)
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	serviceRequests := make([]models.ServiceRequest, 0, len(documents))
	for _, document := range documents {
		serviceRequests = append(serviceRequests, toServiceRequest(document))
	}

	repo.Log.Info("serviceRequestMongoRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingServiceRequestsCount, len(serviceRequests)),
	)
	return serviceRequests, nil
}

// EnsureIndexes creates the non-unique lookup index used by
// FindByPatientIdentifier. Creating an existing index is a no-op.
func (repo *serviceRequestMongoRepository) EnsureIndexes(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("serviceRequestMongoRepository.EnsureIndexes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	collection, err := repo.Mongo.Collection(ctx)
	if err != nil {
		return err
	}

	index := mongo.IndexModel{
		Keys: bson.D{
			{Key: constvars.FieldPatientIdentifierSystem, Value: 1},
			{Key: constvars.FieldPatientIdentifierValue, Value: 1},
		},
		Options: options.Index().SetName(constvars.MongoIndexPatientIdentifierLookup),
	}
	_, err = collection.Indexes().CreateOne(ctx, index)
	if err != nil {
		repo.Mongo.MarkUnhealthy(err)
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *serviceRequestMongoRepository) findOne(ctx context.Context, filter bson.M) (models.ServiceRequest, error) {
	collection, err := repo.Mongo.Collection(ctx)
	if err != nil {
		return nil, err
	}

	var document bson.M
	err = collection.FindOne(ctx, filter).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		repo.Mongo.MarkUnhealthy(err)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return toServiceRequest(document), nil
}

// toServiceRequest replaces the stored _id with its hex form under id and
// turns BSON containers into plain maps and slices.
func toServiceRequest(document bson.M) models.ServiceRequest {
	serviceRequest := models.ServiceRequest{}
	for key, value := range document {
		if key == constvars.FieldMongoID {
			continue
		}
		serviceRequest[key] = fromBSON(value)
	}
	switch id := document[constvars.FieldMongoID].(type) {
	case primitive.ObjectID:
		serviceRequest[constvars.FieldID] = id.Hex()
	case string:
		serviceRequest[constvars.FieldID] = id
	}
	return serviceRequest
}

func fromBSON(value interface{}) interface{} {
	switch v := value.(type) {
	case bson.M:
		result := make(map[string]interface{}, len(v))
		for key, item := range v {
			result[key] = fromBSON(item)
		}
		return result
	case bson.D:
		result := make(map[string]interface{}, len(v))
		for _, element := range v {
			result[element.Key] = fromBSON(element.Value)
		}
		return result
	case bson.A:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = fromBSON(item)
		}
		return result
	case primitive.ObjectID:
		return v.Hex()
	default:
		return v
	}
}
