package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	EnvVars EnvVars `json:"env"`
}

// EnvVars holds environment variables required by the application.
// Fields tagged `optional:"true"` are skipped by CheckConfigEnvFields.
type EnvVars struct {
	Port                string `env:"PORT" envDefault:"5000"`
	Host                string `env:"HOST" envDefault:"0.0.0.0"`
	DatabaseDriver      string `env:"DB_DRIVER" envDefault:"sqlite"`
	DatabaseUrl         string `env:"DATABASE_URL" envDefault:"receitas_tudogostoso.db"`
	JwtSecretKey        string `env:"JWT_SECRET_KEY"`
	TokenExpirationDays int    `env:"TOKEN_EXPIRATION_DAYS" envDefault:"30"`
	CorsOrigin          string `env:"CORS_ORIGIN" envDefault:"*"`
	SearchRateLimit     int    `env:"SEARCH_RATE_LIMIT" envDefault:"10"`
	RedisURL            string `env:"REDIS_URL" optional:"true"`
	AWSRegion           string `env:"AWS_REGION" optional:"true"`
	AWSAccessKeyID      string `env:"AWS_ACCESS_KEY_ID" optional:"true"`
	AWSSecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" optional:"true"`
	S3Bucket            string `env:"S3_BUCKET" optional:"true"`
}

// Supported values for DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// LoadConfig loads an optional .env file and parses environment variables
// into the Config struct. Variables already set in the environment win.
func LoadConfig(envFiles ...string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load(envFiles...)

	var config Config
	if err := env.Parse(&config.EnvVars); err != nil {
		return nil, err
	}
	config.EnvVars.DatabaseDriver = strings.ToLower(strings.TrimSpace(config.EnvVars.DatabaseDriver))
	return &config, nil
}

// CheckConfigEnvFields validates that all required EnvVars fields are set.
func (c *Config) CheckConfigEnvFields() error {
	if err := checkFieldsRecursive(reflect.ValueOf(c.EnvVars)); err != nil {
		return err
	}
	switch c.EnvVars.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("$DB_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, c.EnvVars.DatabaseDriver)
	}
	return nil
}

// S3Enabled reports whether image uploads can be served.
func (c *Config) S3Enabled() bool {
	return c.EnvVars.S3Bucket != "" && c.EnvVars.AWSRegion != ""
}

func checkFieldsRecursive(v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := v.Type().Field(i)
		if fieldType.Tag.Get("optional") == "true" {
			continue
		}
		if isZeroValue(field) {
			return fmt.Errorf("$%s must be set", fieldType.Tag.Get("env"))
		}
		if field.Kind() == reflect.Struct {
			if err := checkFieldsRecursive(field); err != nil {
				return err
			}
		}
	}
	return nil
}

func isZeroValue(v reflect.Value) bool {
	return v.Interface() == reflect.Zero(v.Type()).Interface()
}
