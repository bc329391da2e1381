package dto

import "errors"

// Request-level error taxonomy. Extraction degradation is never an error;
// only missing input and total OCR failure reach the caller.
var (
	ErrImageRequired = errors.New("image file is required and must not be empty")
	ErrMissingField  = errors.New("required field is missing")
)

// ErrorResponse is the JSON body for every non-2xx outcome.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
