// Package config reads runtime settings from the environment.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

type ErrorPolicy string

const (
	// OnErrorAbort stops the whole run at the first bad document.
	OnErrorAbort ErrorPolicy = "abort"
	// OnErrorSkip logs the bad document and moves on.
	OnErrorSkip ErrorPolicy = "skip"
)

const defaultAPIPort = 7070

type Config struct {
	LogLevel     string      `validate:"oneof=debug info warn error off"`
	OnError      ErrorPolicy `validate:"oneof=abort skip"`
	ReportBucket string      `validate:"omitempty,nospaces"`
	S3Region     string      `validate:"required_with=ReportBucket"`
	APIPort      int         `validate:"min=1,max=65535"`
}

// Args are the two positional arguments of the command line tool.
type Args struct {
	InputDir   string `validate:"required,dir"`
	OutputPath string `validate:"required"`
}

// LoadDotEnv loads .env into the process environment. A missing file is fine.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func Load() *Config {
	return &Config{
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "info")),
		OnError:      ErrorPolicy(strings.ToLower(getEnv("ON_ERROR", string(OnErrorAbort)))),
		ReportBucket: os.Getenv("REPORT_S3_BUCKET"),
		S3Region:     os.Getenv("AWS_S3_REGION"),
		APIPort:      getEnvInt("API_PORT", defaultAPIPort),
	}
}

func (c *Config) Validate(validate *validator.Validate) error {
	return validate.Struct(c)
}

// SetupLogging applies the configured level to the global gommon logger.
func (c *Config) SetupLogging() {
	log.SetHeader("${time_rfc3339} ${level}")
	log.SetLevel(parseLevel(c.LogLevel))
}

func parseLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// getEnvInt returns 0 for unparsable values so validation reports them.
func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
