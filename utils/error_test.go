package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"authentication", AuthenticationError("login"), http.StatusUnauthorized},
		{"validation", ValidationError("bad"), http.StatusBadRequest},
		{"not found", NotFoundError("missing"), http.StatusBadRequest},
		{"balance", InsufficientBalanceError("broke"), http.StatusBadRequest},
		{"availability", AvailabilityError("busy"), http.StatusBadRequest},
		{"conflict", ConflictError("taken"), http.StatusBadRequest},
		{"method", MethodNotAllowedError("Wrong request method"), http.StatusBadRequest},
		{"wrapped", fmt.Errorf("outer: %w", ConflictError("taken")), http.StatusBadRequest},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestIsKindUnwraps(t *testing.T) {
	err := fmt.Errorf("booking: %w", AvailabilityError("slot closed"))
	require.True(t, IsKind(err, KindAvailability))
	require.False(t, IsKind(err, KindConflict))
	require.Equal(t, KindInternal, KindOf(errors.New("x")))
}

func TestJSONErrorHidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Logger = nil

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	JSONError(c, errors.New("connection refused"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Internal server error", body.Error)
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}
