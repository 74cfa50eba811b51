package service

import (
	"errors"
	"io"

	"nfeparser/cmd/internal/classifier"
	"nfeparser/cmd/internal/contract"
	"nfeparser/cmd/internal/domain/entity"
	"nfeparser/cmd/internal/extractor"
	"nfeparser/cmd/internal/utils"
	"nfeparser/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type DefaultDocumentService struct{}

func NewDocumentService() *DefaultDocumentService {
	return &DefaultDocumentService{}
}

func (d *DefaultDocumentService) ClassifyDocument(r io.Reader, source string) (*contract.DocumentResponse, apierror.ErrorResponse) {
	rec, err := classifyDocument(r, source)
	if err != nil {
		var parseErr *extractor.ParseError
		var qtyErr *classifier.QuantityError
		switch {
		case errors.As(err, &parseErr):
			return nil, apierror.MalformedXMLError
		case errors.As(err, &qtyErr):
			return nil, apierror.NewInvalidQuantityError(qtyErr.Value)
		default:
			log.Errorf("failed to classify uploaded document %s: %v", source, err)
			return nil, apierror.InternalServerError
		}
	}
	return toDocumentResp(&rec), nil
}

func toDocumentResp(r *entity.ClassifiedRecord) *contract.DocumentResponse {
	resp := &contract.DocumentResponse{
		Kind:     string(r.Kind),
		IssuedAt: r.IssuedAt,
		Product: contract.Product{
			Description:   r.ProductDescription,
			UnitOfMeasure: r.UnitOfMeasure,
			Quantity:      r.Quantity,
		},
		Flow:         optional(r.FlowString()),
		Material:     optional(r.MaterialString()),
		Eligibility:  optional(r.EligibilityString()),
		IssuerCNPJOK: utils.IsCNPJValid(r.IssuerCNPJ),
		Source:       r.Source,
	}

	if r.IssuerCNPJ != "" || r.IssuerName != "" {
		resp.Issuer = &contract.Party{CNPJ: r.IssuerCNPJ, Name: r.IssuerName}
	}
	if r.RecipientCNPJ != "" || r.RecipientName != "" {
		resp.Recipient = &contract.Party{CNPJ: r.RecipientCNPJ, Name: r.RecipientName}
	}
	return resp
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
