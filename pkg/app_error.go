package pkg

import "net/http"

// AppError is the error shape returned by every HTTP handler.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// ToHTTPError renders the public part of the error. Server errors expose the
// underlying cause so operators can read it from the client response.
func (e *AppError) ToHTTPError() HTTPError {
	msg := e.Message
	if e.HTTPStatus >= http.StatusInternalServerError && e.Err != nil && e.Err.Error() != "" {
		msg = e.Err.Error()
	}
	return HTTPError{Code: e.Code, Message: msg}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}
