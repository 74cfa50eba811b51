package service

import (
	"fmt"
	"io"
	"time"

	"nfeparser/cmd/internal/classifier"
	"nfeparser/cmd/internal/domain/entity"
	"nfeparser/cmd/internal/extractor"
	"nfeparser/cmd/internal/utils"

	"github.com/labstack/gommon/log"
)

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// classifyDocument parses, extracts and classifies one document.
func classifyDocument(r io.Reader, source string) (entity.ClassifiedRecord, error) {
	doc, err := extractor.Parse(r, source)
	if err != nil {
		return entity.ClassifiedRecord{}, err
	}

	rec := extractor.Extract(doc, source)
	classified, err := classifier.Classify(rec)
	if err != nil {
		return classified, fmt.Errorf("failed to classify %s: %w", source, err)
	}

	auditIssuer(&classified.ExtractedRecord)
	return classified, nil
}

// auditIssuer only logs; a bad check digit never changes the verdicts.
func auditIssuer(rec *entity.ExtractedRecord) {
	if rec.IssuerCNPJ == "" || utils.IsCNPJValid(rec.IssuerCNPJ) {
		return
	}
	log.Warnf("issuer cnpj %q in %s fails the check digit test", rec.IssuerCNPJ, rec.Source)
}
