package main

import (
	"context"
	"fmt"
	"io"

	"servicerequest-service/internal/app/config"
	"servicerequest-service/internal/app/contracts"
	"servicerequest-service/internal/app/drivers/database"
	"servicerequest-service/internal/app/drivers/logger"
	"servicerequest-service/internal/app/models"
	"servicerequest-service/internal/app/services/core/service_requests"
	"servicerequest-service/internal/app/services/shared/fhirschema"
	"servicerequest-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cliApp holds what a command needs. The store is only connected for
// commands that read or write records.
type cliApp struct {
	InternalConfig *config.InternalConfig
	DriverConfig   *config.DriverConfig
	Log            *zap.Logger
	MongoDB        *database.MongoHandle
	Repository     contracts.ServiceRequestRepository
}

func newCLIApp(cmd *cobra.Command, withStore bool) (*cliApp, error) {
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		return nil, fmt.Errorf("loading internal config: %w", err)
	}
	driverConfig, err := config.NewDriverConfig()
	if err != nil {
		return nil, fmt.Errorf("loading driver config: %w", err)
	}

	level, _ := cmd.Flags().GetString("log-level")
	driverConfig.Logger.Level = level

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	app := &cliApp{
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
		Log:            zapLogger,
	}
	if !withStore {
		return app, nil
	}

	mongoDB, err := database.NewMongoDB(commandContext(cmd), driverConfig, zapLogger)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo database: %w", err)
	}
	app.MongoDB = mongoDB
	app.Repository = service_requests.NewServiceRequestMongoRepository(mongoDB, zapLogger)
	return app, nil
}

// usecase builds the write pipeline. The schema validator is loaded on
// demand since it has to read its embedded packages first.
func (app *cliApp) usecase() (contracts.ServiceRequestUsecase, error) {
	schemaValidator, err := fhirschema.NewFHIRValidator(app.InternalConfig, app.Log)
	if err != nil {
		return nil, fmt.Errorf("loading FHIR validator: %w", err)
	}
	return service_requests.NewServiceRequestUsecase(app.Repository, schemaValidator, app.Log), nil
}

func (app *cliApp) Close(ctx context.Context) {
	if app.MongoDB != nil {
		app.MongoDB.Disconnect(ctx)
	}
	app.Log.Sync()
}

func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return utils.WithRequestID(ctx, utils.GenerateRequestID())
}

func printServiceRequest(w io.Writer, serviceRequest models.ServiceRequest) error {
	encoded, err := json.MarshalIndent(serviceRequest, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(encoded))
	fmt.Fprint(w, serviceRequest.Summary().String())
	return nil
}
