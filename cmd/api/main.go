package main

import (
	"context"
	"fmt"
	"os"

	"nfeparser/cmd/internal/config"
	"nfeparser/cmd/internal/contract"
	"nfeparser/cmd/internal/domain/rules"
	handler2 "nfeparser/cmd/internal/http/handler"
	"nfeparser/cmd/internal/service"
	"nfeparser/cmd/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/nfeparser/prod/"

func main() {
	validate := validator.New()
	validators.Register(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		if err := config.LoadDotEnv(); err != nil {
			panic(err)
		}
	}

	cfg := config.Load()
	if err := cfg.Validate(validate); err != nil {
		panic(err)
	}
	cfg.SetupLogging()

	if err := rules.Validate(validate); err != nil {
		panic(err)
	}

	// Getting services
	documentService := service.NewDocumentService()

	// Getting handler
	documentRoutes := handler2.NewDocumentDefault(documentService)

	e := newServer(documentRoutes)
	if err := e.Start(fmt.Sprintf(":%d", cfg.APIPort)); err != nil {
		panic(err)
	}
}

func newServer(documentRoutes *handler2.DefaultDocumentRoute) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	// Multipart overhead on top of the document itself
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dK", contract.MaxDocumentSizeBytes/1024+64)))

	// Documents
	e.POST("/api/documents", documentRoutes.ClassifyDocument)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)
	return e
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
