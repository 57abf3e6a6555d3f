package config

import "fmt"

type DriverConfig struct {
	MongoDB MongoDB `mapstructure:"mongodb"`
	Redis   Redis   `mapstructure:"redis"`
	Logger  Logger  `mapstructure:"logger"`
}

type MongoDB struct {
	URI                     string `mapstructure:"uri"`
	Host                    string `mapstructure:"host"`
	Port                    string `mapstructure:"port"`
	Username                string `mapstructure:"username"`
	Password                string `mapstructure:"password"`
	DbName                  string `mapstructure:"db_name"`
	Collection              string `mapstructure:"collection"`
	ConnectTimeoutInSeconds int    `mapstructure:"connect_timeout_in_seconds"`
}

type Redis struct {
	Host              string `mapstructure:"host"`
	Port              string `mapstructure:"port"`
	Password          string `mapstructure:"password"`
	DB                int    `mapstructure:"db"`
	CacheTTLInMinutes int    `mapstructure:"cache_ttl_in_minutes"`
}

type Logger struct {
	Level               string `mapstructure:"level"`
	OutputFileName      string `mapstructure:"output_filename"`
	OutputErrorFileName string `mapstructure:"output_error_filename"`
}

// ConnectionString prefers the explicit URI; otherwise it is assembled
// from host and port, with credentials when a username is set.
func (m MongoDB) ConnectionString() string {
	if m.URI != "" {
		return m.URI
	}
	if m.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", m.Host, m.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s", m.Username, m.Password, m.Host, m.Port)
}

// Enabled reports whether a Redis cache has been configured.
func (r Redis) Enabled() bool {
	return r.Host != ""
}

func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}
