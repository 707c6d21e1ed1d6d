package pkg

import "fmt"

// AppError is the transport-facing error shape: a stable machine-readable
// code plus a human-readable description, with the HTTP status it maps to.
type AppError struct {
	Code        string
	Description string
	Err         error
	HTTPStatus  int
}

// HTTPError is the JSON body returned to clients on failure.
type HTTPError struct {
	ErrorCode        string `json:"error_code"`
	ErrorDescription string `json:"error_description"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Description, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError renders the client-visible body. When the error wraps a domain
// cause its text is appended to the description so callers see, e.g., the
// overcommitted amount.
func (e *AppError) ToHTTPError() HTTPError {
	desc := e.Description
	if e.Err != nil {
		desc = fmt.Sprintf("%s: %v", e.Description, e.Err)
	}
	return HTTPError{ErrorCode: e.Code, ErrorDescription: desc}
}

// NewDomainErrorSimple builds an AppError with no wrapped cause.
func NewDomainErrorSimple(code, description string, httpStatus int) *AppError {
	return &AppError{Code: code, Description: description, HTTPStatus: httpStatus}
}

// NewDomainError builds an AppError that carries the underlying cause.
func NewDomainError(code, description string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Description: description, Err: err, HTTPStatus: httpStatus}
}
