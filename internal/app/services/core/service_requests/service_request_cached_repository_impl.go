package service_requests

import (
	"context"
	"fmt"
	"servicerequest-service/internal/app/contracts"
	"servicerequest-service/internal/app/models"
	"servicerequest-service/internal/pkg/constvars"
	"servicerequest-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// serviceRequestCachedRepository puts a Redis read-through cache in front
// of FindByID. Records are never updated or deleted, so entries only
// leave the cache by expiry. Cache failures are logged and bypassed.
type serviceRequestCachedRepository struct {
	ServiceRequestRepository contracts.ServiceRequestRepository
	RedisRepository          contracts.RedisRepository
	TTL                      time.Duration
	Log                      *zap.Logger
}

func NewServiceRequestCachedRepository(
	serviceRequestRepository contracts.ServiceRequestRepository,
	redisRepository contracts.RedisRepository,
	ttl time.Duration,
	logger *zap.Logger,
) contracts.ServiceRequestRepository {
	return &serviceRequestCachedRepository{
		ServiceRequestRepository: serviceRequestRepository,
		RedisRepository:          redisRepository,
		TTL:                      ttl,
		Log:                      logger,
	}
}

func (repo *serviceRequestCachedRepository) Insert(ctx context.Context, serviceRequest models.ServiceRequest) (string, error) {
	serviceRequestID, err := repo.ServiceRequestRepository.Insert(ctx, serviceRequest)
	if err != nil {
		return "", err
	}

	stored := models.ServiceRequest(utils.CloneDocument(serviceRequest))
	stored[constvars.FieldID] = serviceRequestID
	repo.store(ctx, stored)
	return serviceRequestID, nil
}

func (repo *serviceRequestCachedRepository) FindByID(ctx context.Context, serviceRequestID string) (models.ServiceRequest, error) {
	requestID := utils.GetRequestID(ctx)
	cacheKey := serviceRequestCacheKey(serviceRequestID)

	cached, err := repo.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		repo.Log.Warn("serviceRequestCachedRepository.FindByID cache read failed, using database",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, cacheKey),
			zap.Error(err),
		)
	}

	if cached != "" {
		var serviceRequest models.ServiceRequest
		err = json.Unmarshal([]byte(cached), &serviceRequest)
		if err == nil {
			repo.Log.Info("serviceRequestCachedRepository.FindByID cache hit",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, cacheKey),
			)
			return serviceRequest, nil
		}
		repo.Log.Warn("serviceRequestCachedRepository.FindByID cached entry unreadable, using database",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, cacheKey),
			zap.Error(err),
		)
	}

	serviceRequest, err := repo.ServiceRequestRepository.FindByID(ctx, serviceRequestID)
	if err != nil || serviceRequest == nil {
		return serviceRequest, err
	}

	repo.store(ctx, serviceRequest)
	return serviceRequest, nil
}

func (repo *serviceRequestCachedRepository) FindByPatientIdentifier(ctx context.Context, system, value string) (models.ServiceRequest, error) {
	return repo.ServiceRequestRepository.FindByPatientIdentifier(ctx, system, value)
}

func (repo *serviceRequestCachedRepository) FindAll(ctx context.Context) ([]models.ServiceRequest, error) {
	return repo.ServiceRequestRepository.FindAll(ctx)
}

func (repo *serviceRequestCachedRepository) EnsureIndexes(ctx context.Context) error {
	return repo.ServiceRequestRepository.EnsureIndexes(ctx)
}

func (repo *serviceRequestCachedRepository) store(ctx context.Context, serviceRequest models.ServiceRequest) {
	cacheKey := serviceRequestCacheKey(serviceRequest.ID())
	err := repo.RedisRepository.Set(ctx, cacheKey, serviceRequest, repo.TTL)
	if err != nil {
		repo.Log.Warn("serviceRequestCachedRepository.store cache write failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCacheKey, cacheKey),
			zap.Error(err),
		)
	}
}

func serviceRequestCacheKey(serviceRequestID string) string {
	return fmt.Sprintf(constvars.RedisKeyServiceRequestByID, serviceRequestID)
}
