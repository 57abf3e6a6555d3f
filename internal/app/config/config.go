package config

import (
	"strings"

	"servicerequest-service/internal/pkg/constvars"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

var internalDefaults = map[string]interface{}{
	"app.env":                            "development",
	"app.port":                           ":8080",
	"app.version":                        "v1.0",
	"app.timezone":                       "UTC",
	"app.endpoint_prefix":                "",
	"app.cors_allowed_origins":           []string{"*"},
	"app.max_requests":                   100,
	"app.max_time_requests_per_seconds":  1,
	"app.shutdown_timeout_in_seconds":    10,
	"app.request_body_limit_in_megabyte": 6,
	"fhir.version":                       "4.0.1",
	"fhir.strict_mode":                   false,
}

var driverDefaults = map[string]interface{}{
	"mongodb.uri":                        "",
	"mongodb.host":                       "localhost",
	"mongodb.port":                       "27017",
	"mongodb.username":                   "",
	"mongodb.password":                   "",
	"mongodb.db_name":                    constvars.MongoDefaultDatabaseName,
	"mongodb.collection":                 constvars.MongoCollectionServiceRequests,
	"mongodb.connect_timeout_in_seconds": 10,
	"redis.host":                         "",
	"redis.port":                         "6379",
	"redis.password":                     "",
	"redis.db":                           0,
	"redis.cache_ttl_in_minutes":         60,
	"logger.level":                       "info",
	"logger.output_filename":             "logger.log",
	"logger.output_error_filename":       "logger_error.log",
}

// newEnvViper binds every key in defaults to its upper-cased environment
// variable, so "mongodb.db_name" is read from MONGODB_DB_NAME.
func newEnvViper(defaults map[string]interface{}) *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

func NewInternalConfig() (*InternalConfig, error) {
	internalConfig := new(InternalConfig)
	err := newEnvViper(internalDefaults).Unmarshal(internalConfig)
	if err != nil {
		return nil, err
	}
	return internalConfig, nil
}

func NewDriverConfig() (*DriverConfig, error) {
	driverConfig := new(DriverConfig)
	err := newEnvViper(driverDefaults).Unmarshal(driverConfig)
	if err != nil {
		return nil, err
	}
	return driverConfig, nil
}
