package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"nfeparser/cmd/internal/classifier"
	"nfeparser/cmd/internal/config"
	"nfeparser/cmd/internal/domain/entity"
	"nfeparser/cmd/internal/export"
	"nfeparser/cmd/internal/extractor"
	"nfeparser/cmd/internal/infrastructure/aws/storage"
	"nfeparser/cmd/internal/infrastructure/files"
	"nfeparser/cmd/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type Summary struct {
	RunID     string
	Files     int
	Written   int
	Skipped   int
	Eligible  int
	ByKind    map[entity.DocumentKind]int
	ReportKey string
	TookMs    int64
}

type ReportService struct {
	OnError config.ErrorPolicy
	// S3 is optional; when set, the finished report is uploaded.
	S3 storage.S3Client
}

func NewReportService(onError config.ErrorPolicy, s3 storage.S3Client) *ReportService {
	return &ReportService{OnError: onError, S3: s3}
}

// Run classifies every document under args.InputDir and writes one report
// row per document, in walk order. The report only appears at
// args.OutputPath once the whole run succeeded.
func (s *ReportService) Run(ctx context.Context, args config.Args) (*Summary, error) {
	start := NowUTC()
	summary := &Summary{
		RunID:  uuid.NewString(),
		ByKind: make(map[entity.DocumentKind]int),
	}

	if err := files.CheckReadableDir(args.InputDir); err != nil {
		return nil, fmt.Errorf("input directory is not readable: %w", err)
	}

	out, err := files.CreateAtomic(args.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("output path is not writable: %w", err)
	}
	defer out.Abort()

	paths, err := files.FindDocuments(ctx, args.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	summary.Files = len(paths)
	log.Infof("run %s started at %s: found %d documents in %s",
		summary.RunID, utils.FormatEpoch(start), len(paths), args.InputDir)

	writer := export.NewReportWriter(out)
	if err := writer.WriteHeader(); err != nil {
		return nil, err
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		log.Infof("processing file: %s", path)
		rec, err := s.classifyFile(path)
		if err != nil {
			if s.OnError == config.OnErrorSkip && isDocumentError(err) {
				log.Warnf("skipping %s: %v", path, err)
				summary.Skipped++
				continue
			}
			return nil, err
		}

		if err := writer.Write(&rec); err != nil {
			return nil, fmt.Errorf("failed to write report row: %w", err)
		}
		summary.ByKind[rec.Kind]++
		if rec.EligibilityString() == string(entity.Eligible) {
			summary.Eligible++
		}
	}

	if err := writer.Flush(); err != nil {
		return nil, err
	}
	if err := out.Commit(); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}
	summary.Written = writer.Rows()

	if s.S3 != nil {
		key, err := s.upload(ctx, summary.RunID, args.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to upload report: %w", err)
		}
		summary.ReportKey = key
	}

	summary.TookMs = NowUTC() - start
	log.Infof("run %s: wrote %d rows (%d eligible, %d skipped) to %s in %dms",
		summary.RunID, summary.Written, summary.Eligible, summary.Skipped, args.OutputPath, summary.TookMs)
	return summary, nil
}

func (s *ReportService) classifyFile(path string) (entity.ClassifiedRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return entity.ClassifiedRecord{}, err
	}
	defer f.Close()

	return classifyDocument(f, path)
}

func (s *ReportService) upload(ctx context.Context, runID, reportPath string) (string, error) {
	data, err := os.ReadFile(reportPath)
	if err != nil {
		return "", err
	}
	return s.S3.UploadFile(ctx, data, runID+"-"+filepath.Base(reportPath))
}

// isDocumentError reports failures that belong to one document rather than
// to the run, which are the only ones the skip policy may swallow.
func isDocumentError(err error) bool {
	var parseErr *extractor.ParseError
	var qtyErr *classifier.QuantityError
	return errors.As(err, &parseErr) || errors.As(err, &qtyErr)
}
