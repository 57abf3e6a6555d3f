package config

import "strings"

type InternalConfig struct {
	App  App     `mapstructure:"app"`
	FHIR AppFHIR `mapstructure:"fhir"`
}

type App struct {
	Env                        string   `mapstructure:"env"`
	Port                       string   `mapstructure:"port"`
	Version                    string   `mapstructure:"version"`
	Timezone                   string   `mapstructure:"timezone"`
	EndpointPrefix             string   `mapstructure:"endpoint_prefix"`
	CorsAllowedOrigins         []string `mapstructure:"cors_allowed_origins"`
	MaxRequests                int      `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds  int      `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds   int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int      `mapstructure:"request_body_limit_in_megabyte"`
}

type AppFHIR struct {
	// Version is the FHIR release the schema validator checks against.
	Version    string `mapstructure:"version"`
	StrictMode bool   `mapstructure:"strict_mode"`
}

// ServerAddress accepts both "8080" and ":8080" forms of APP_PORT.
func (a App) ServerAddress() string {
	if strings.Contains(a.Port, ":") {
		return a.Port
	}
	return ":" + a.Port
}
