package config

import (
	"testing"

	"nfeparser/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	v := validator.New()
	validators.Register(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ON_ERROR", "")
	t.Setenv("REPORT_S3_BUCKET", "")
	t.Setenv("API_PORT", "")

	cfg := Load()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, OnErrorAbort, cfg.OnError)
	assert.Equal(t, defaultAPIPort, cfg.APIPort)
	assert.NoError(t, cfg.Validate(newValidator()))
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ON_ERROR", "skip")
	t.Setenv("REPORT_S3_BUCKET", "fiscal-reports")
	t.Setenv("AWS_S3_REGION", "sa-east-1")
	t.Setenv("API_PORT", "8080")

	cfg := Load()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, OnErrorSkip, cfg.OnError)
	assert.Equal(t, 8080, cfg.APIPort)
	require.NoError(t, cfg.Validate(newValidator()))
}

func TestValidate_Rejects(t *testing.T) {
	v := newValidator()
	base := Config{LogLevel: "info", OnError: OnErrorAbort, APIPort: 7070}

	bad := base
	bad.OnError = "retry"
	assert.Error(t, bad.Validate(v))

	bad = base
	bad.LogLevel = "verbose"
	assert.Error(t, bad.Validate(v))

	bad = base
	bad.ReportBucket = "reports"
	assert.Error(t, bad.Validate(v), "bucket without region")

	bad = base
	bad.APIPort = 0
	assert.Error(t, bad.Validate(v))
}

func TestArgs(t *testing.T) {
	v := newValidator()
	assert.NoError(t, v.Struct(&Args{InputDir: t.TempDir(), OutputPath: "out.csv"}))
	assert.Error(t, v.Struct(&Args{InputDir: "/definitely/not/here", OutputPath: "out.csv"}))
	assert.Error(t, v.Struct(&Args{InputDir: t.TempDir()}))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DEBUG, parseLevel("debug"))
	assert.Equal(t, log.OFF, parseLevel("off"))
	assert.Equal(t, log.INFO, parseLevel("anything"))
}
