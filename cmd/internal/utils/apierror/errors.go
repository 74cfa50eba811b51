package apierror

import (
	"fmt"
	"net/http"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

var (
	InternalServerError = NewSimple(500, "Internal server error")

	MissingDocumentError  = NewSimple(400, "Multipart field 'document' is required")
	InvalidMediaTypeError = NewSimple(415, "Expected a multipart/form-data upload")
	MalformedXMLError     = NewSimple(422, "Document is not well-formed XML")
)

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewInvalidFileTypeError(ext string, valid []string) *APIError {
	return NewSimple(http.StatusBadRequest, "File type '%s' is not accepted, expected one of: %v", ext, valid)
}

func NewFileTooLargeError(maxBytes int64) *APIError {
	return NewSimple(http.StatusRequestEntityTooLarge, "Document exceeds the limit of %d bytes", maxBytes)
}

func NewInvalidQuantityError(quantity string) *APIError {
	return NewSimple(http.StatusUnprocessableEntity, "Quantity '%s' is not a number", quantity)
}
