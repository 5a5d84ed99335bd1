package pkg

import "net/http"

// AppError is the error shape returned by HTTP handlers.
//
// Code is the machine-readable identifier clients switch on (e.g. PROPOSAL_NOT_FOUND);
// Message is safe to show; Err keeps the underlying cause for logs only.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    []string
}

// HTTPError is the JSON body rendered for an AppError.
type HTTPError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails returns a copy of the error carrying extra human-readable details.
func (e *AppError) WithDetails(details ...string) *AppError {
	cp := *e
	cp.Details = append([]string(nil), details...)
	return &cp
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another AppError by code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}

// Status returns the HTTP status, defaulting to 500.
func (e *AppError) Status() int {
	if e.HTTPStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.HTTPStatus
}
