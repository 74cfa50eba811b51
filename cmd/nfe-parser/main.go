package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"nfeparser/cmd/internal/config"
	"nfeparser/cmd/internal/domain/rules"
	"nfeparser/cmd/internal/infrastructure/aws/storage"
	"nfeparser/cmd/internal/service"
	"nfeparser/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

const usage = "usage: nfe-parser <xml-directory> <output-csv>"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	if len(argv) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		return 1
	}

	validate := validator.New()
	validators.Register(validate)

	cfg := config.Load()
	if err := cfg.Validate(validate); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		return 1
	}
	cfg.SetupLogging()

	if err := rules.Validate(validate); err != nil {
		log.Errorf("rule tables are invalid: %v", err)
		return 1
	}

	args := config.Args{InputDir: argv[0], OutputPath: argv[1]}
	if err := validate.Struct(&args); err != nil {
		log.Errorf("invalid arguments: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var s3Client storage.S3Client
	if cfg.ReportBucket != "" {
		client, err := storage.NewStorageClient(ctx, cfg.S3Region, cfg.ReportBucket)
		if err != nil {
			log.Errorf("unable to init S3 client: %v", err)
			return 1
		}
		s3Client = client
	}

	reports := service.NewReportService(cfg.OnError, s3Client)
	if _, err := reports.Run(ctx, args); err != nil {
		log.Errorf("%v", err)
		return 1
	}
	return 0
}
