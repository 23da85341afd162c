package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies failures so the HTTP boundary can pick a status code.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindAuthentication
	KindValidation
	KindNotFound
	KindInsufficientBalance
	KindAvailability
	KindConflict
	KindMethodNotAllowed
)

func (k ErrorKind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInsufficientBalance:
		return "insufficient_balance"
	case KindAvailability:
		return "availability"
	case KindConflict:
		return "conflict"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	default:
		return "internal"
	}
}

// AppError is a user-facing failure with a human-readable message.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func newAppError(kind ErrorKind, msg string) error {
	return &AppError{Kind: kind, Message: msg}
}

func AuthenticationError(msg string) error      { return newAppError(KindAuthentication, msg) }
func ValidationError(msg string) error          { return newAppError(KindValidation, msg) }
func NotFoundError(msg string) error            { return newAppError(KindNotFound, msg) }
func InsufficientBalanceError(msg string) error { return newAppError(KindInsufficientBalance, msg) }
func AvailabilityError(msg string) error        { return newAppError(KindAvailability, msg) }
func ConflictError(msg string) error            { return newAppError(KindConflict, msg) }
func MethodNotAllowedError(msg string) error    { return newAppError(KindMethodNotAllowed, msg) }

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// StatusFor maps an error to its HTTP status. Only authentication failures get
// their own code; every other domain failure is a 400.
func StatusFor(err error) int {
	switch KindOf(err) {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// ErrorResponse is the single error body returned to clients.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSONError writes err as {"error": "..."} with the status from StatusFor.
// Unclassified errors are logged and replaced by a generic message.
func JSONError(c *gin.Context, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		GetLogger().Error("Unhandled error", zap.String("path", c.Request.URL.Path), zap.Error(err))
		msg = "Internal server error"
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
		}()
		c.Next()
	}
}
