package errors

import (
	"errors"
	"fmt"
)

// ErrorCode is the machine readable code returned in error bodies
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden          ErrorCode = "FORBIDDEN"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken       ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeInvalidRole        ErrorCode = "INVALID_ROLE"
	ErrCodeTooManyRequests    ErrorCode = "TOO_MANY_REQUESTS"

	// Resource errors
	ErrCodeNotFound  ErrorCode = "NOT_FOUND"
	ErrCodeInvalidID ErrorCode = "INVALID_ID"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidPatch  ErrorCode = "INVALID_PATCH"

	// Upload errors
	ErrCodeEmptyUpload  ErrorCode = "EMPTY_UPLOAD"
	ErrCodeUploadFailed ErrorCode = "UPLOAD_FAILED"

	// Business errors
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
	ErrCodeServerError      ErrorCode = "SERVER_ERROR"
)

// FieldError describes one failed field rule
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// AppError is an error that carries a code and a message safe to show callers
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
	Fields  []FieldError
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a VALIDATION_ERROR with per-field details
func NewValidationError(message string, fields []FieldError) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Fields:  fields,
	}
}

// IsAppError reports whether err is or wraps an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError returns the AppError in err's chain, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// Is and As re-export the standard helpers so callers need a single import.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target interface{}) bool { return errors.As(err, target) }

var (
	// Lookup errors
	ErrNotFound       = errors.New("resource not found")
	ErrParentNotFound = errors.New("parent resource not found")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidToken       = errors.New("invalid token")

	// Write errors
	ErrDuplicate = errors.New("resource already exists")

	// Booking errors
	ErrInvalidStay     = errors.New("check-out must be after check-in")
	ErrRoomUnavailable = errors.New("room is already booked for these dates")

	// Upload errors
	ErrEmptyUpload = errors.New("no file uploaded")
)
