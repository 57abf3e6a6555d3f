package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"servicerequest-service/internal/app/contracts"
	"servicerequest-service/internal/pkg/constvars"
	"servicerequest-service/internal/pkg/dto/responses"
	"servicerequest-service/internal/pkg/exceptions"
	"servicerequest-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ServiceRequestController struct {
	Log                   *zap.Logger
	ServiceRequestUsecase contracts.ServiceRequestUsecase
}

func NewServiceRequestController(logger *zap.Logger, serviceRequestUsecase contracts.ServiceRequestUsecase) *ServiceRequestController {
	return &ServiceRequestController{
		Log:                   logger,
		ServiceRequestUsecase: serviceRequestUsecase,
	}
}

func (ctrl *ServiceRequestController) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readRawBody(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadRequestBody(err))
		return
	}

	response, err := ctrl.ServiceRequestUsecase.Submit(r.Context(), body)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, response)
}

func (ctrl *ServiceRequestController) FindByID(w http.ResponseWriter, r *http.Request) {
	serviceRequestID := chi.URLParam(r, "id")

	response, err := ctrl.ServiceRequestUsecase.FindByID(r.Context(), serviceRequestID)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *ServiceRequestController) FindByPatientIdentifier(w http.ResponseWriter, r *http.Request) {
	request := utils.BuildPatientIdentifierQuery(r)
	utils.SanitizePatientIdentifierQuery(request)

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.ServiceRequestUsecase.FindByPatientIdentifier(r.Context(), request)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *ServiceRequestController) FindAll(w http.ResponseWriter, r *http.Request) {
	serviceRequests, err := ctrl.ServiceRequestUsecase.FindAll(r.Context())
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.ServiceRequestList{
		ServiceRequests: serviceRequests,
	})
}

func (ctrl *ServiceRequestController) writeError(w http.ResponseWriter, err error) {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) && errors.Is(err, context.DeadlineExceeded) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

// readRawBody prefers the bytes captured by the body buffer middleware.
func readRawBody(r *http.Request) ([]byte, error) {
	if body, ok := r.Context().Value(constvars.CONTEXT_RAW_BODY).([]byte); ok {
		return body, nil
	}
	return io.ReadAll(r.Body)
}
