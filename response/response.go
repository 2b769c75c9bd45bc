package response

import (
	"net/http"

	"hotelinfo/errors"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

// PaginationHeader carries the paging metadata of list responses
const PaginationHeader = "X-Pagination"

// Response is the error body
type Response struct {
	Code   errors.ErrorCode    `json:"code"`
	Mess   string              `json:"mess"`
	Errors []errors.FieldError `json:"errors,omitempty"`
}

// Success writes data with 200
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SuccessWithPagination writes data with 200 and serializes pagination into
// the X-Pagination header
func SuccessWithPagination(c *gin.Context, data interface{}, pagination interface{}) {
	header, err := json.Marshal(pagination)
	if err == nil {
		c.Header(PaginationHeader, string(header))
	}
	c.Header("Access-Control-Expose-Headers", PaginationHeader)
	c.JSON(http.StatusOK, data)
}

// Created writes data with 201 and a Location header pointing at the new resource
func Created(c *gin.Context, location string, data interface{}) {
	if location != "" {
		c.Header("Location", location)
	}
	c.JSON(http.StatusCreated, data)
}

// NoContent writes an empty 204
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes an error body with the given status
func Error(c *gin.Context, status int, code errors.ErrorCode, message string) {
	c.JSON(status, Response{
		Code: code,
		Mess: message,
	})
}

// AppError writes err with the status its code maps to
func AppError(c *gin.Context, err *errors.AppError) {
	c.JSON(StatusFor(err.Code), Response{
		Code:   err.Code,
		Mess:   err.Message,
		Errors: err.Fields,
	})
}

// ServerError writes a 500 without leaking the cause
func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, errors.ErrCodeServerError, "Internal server error")
}

// Unauthorized writes a 401
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, errors.ErrCodeUnauthorized, "Unauthorized")
}

// Forbidden writes a 403
func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, errors.ErrCodeForbidden, "Access denied")
}

// NotFound writes a 404
func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, errors.ErrCodeNotFound, "Not found")
}

// ValidationError writes a 400 with per-field details
func ValidationError(c *gin.Context, message string, fields []errors.FieldError) {
	c.JSON(http.StatusBadRequest, Response{
		Code:   errors.ErrCodeValidation,
		Mess:   message,
		Errors: fields,
	})
}

// BadRequest writes a 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, errors.ErrCodeInvalidFormat, message)
}

// TooManyRequests writes a 429
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, errors.ErrCodeTooManyRequests, "Too many requests")
}

// StatusFor maps an error code to its HTTP status
func StatusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken,
		errors.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case errors.ErrCodeForbidden, errors.ErrCodeInvalidRole:
		return http.StatusForbidden
	case errors.ErrCodeNotFound, errors.ErrCodeDBNotFound:
		return http.StatusNotFound
	case errors.ErrCodeDBDuplicate, errors.ErrCodeInvalidOperation:
		return http.StatusConflict
	case errors.ErrCodeTooManyRequests:
		return http.StatusTooManyRequests
	case errors.ErrCodeDBError, errors.ErrCodeServerError:
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
