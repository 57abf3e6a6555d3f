package controllers

import (
	"net/http"

	"servicerequest-service/internal/app/contracts"
	"servicerequest-service/internal/pkg/constvars"
	"servicerequest-service/internal/pkg/dto/responses"
	"servicerequest-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type HealthController struct {
	Log      *zap.Logger
	Database contracts.HealthChecker
	Cache    contracts.HealthChecker
}

// NewHealthController accepts a nil cache when caching is disabled.
func NewHealthController(logger *zap.Logger, database contracts.HealthChecker, cache contracts.HealthChecker) *HealthController {
	return &HealthController{
		Log:      logger,
		Database: database,
		Cache:    cache,
	}
}

// Check reports 503 when the record store cannot be reached. An unreachable
// cache is reported but does not fail the check, since reads bypass it.
func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	response := responses.HealthCheck{
		Status:   constvars.HealthStatusOK,
		Database: constvars.HealthStatusOK,
	}
	code := constvars.StatusOK

	if err := ctrl.Database.Ping(ctx); err != nil {
		ctrl.Log.Error("HealthController.Check database ping failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		response.Status = constvars.HealthStatusUnavailable
		response.Database = constvars.HealthStatusUnavailable
		code = constvars.StatusServiceUnavailable
	}

	if ctrl.Cache == nil {
		response.Cache = constvars.HealthStatusDisabled
	} else if err := ctrl.Cache.Ping(ctx); err != nil {
		ctrl.Log.Warn("HealthController.Check cache ping failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		response.Cache = constvars.HealthStatusUnavailable
	} else {
		response.Cache = constvars.HealthStatusOK
	}

	utils.BuildSuccessResponse(w, code, response)
}
