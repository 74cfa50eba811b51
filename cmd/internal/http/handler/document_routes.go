package handler

import (
	"io"
	"net/http"
	"strings"

	"nfeparser/cmd/internal/contract"
	"nfeparser/cmd/internal/utils"
	"nfeparser/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type DocumentService interface {
	ClassifyDocument(r io.Reader, source string) (*contract.DocumentResponse, apierror.ErrorResponse)
}

type DefaultDocumentRoute struct {
	DocumentService DocumentService
}

func NewDocumentDefault(documentService DocumentService) *DefaultDocumentRoute {
	return &DefaultDocumentRoute{DocumentService: documentService}
}

// ClassifyDocument classifies a single uploaded XML document without
// storing it.
func (d *DefaultDocumentRoute) ClassifyDocument(c echo.Context) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		mediaTypeError := apierror.InvalidMediaTypeError
		return c.JSON(mediaTypeError.Code(), mediaTypeError)
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MissingDocumentError)
	}

	ext, ok := utils.CheckFileExt(fileHeader.Filename, contract.ValidDocumentFileTypes)
	if !ok {
		apierr := apierror.NewInvalidFileTypeError(ext, contract.ValidDocumentFileTypes)
		return c.JSON(apierr.Code(), apierr)
	}

	if fileHeader.Size > contract.MaxDocumentSizeBytes {
		apierr := apierror.NewFileTooLargeError(contract.MaxDocumentSizeBytes)
		return c.JSON(apierr.Code(), apierr)
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Errorf("failed to open uploaded document %s: %v", fileHeader.Filename, err)
		return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
	}
	defer file.Close()

	doc, apierr := d.DocumentService.ClassifyDocument(file, fileHeader.Filename)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, doc)
}
