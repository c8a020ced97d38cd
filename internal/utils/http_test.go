package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paceline/paceline/internal/pkg/apperrors"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusOK, "done", map[string]string{"id": "1"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "done", resp.Message)
}

func TestDomainErrorResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", apperrors.NotFoundf("session %s", "s1"), http.StatusNotFound},
		{"permission denied", apperrors.PermissionDeniedf("blocked"), http.StatusForbidden},
		{"already exists", apperrors.AlreadyExistsf("pending request"), http.StatusConflict},
		{"already active", apperrors.ErrAlreadyActive, http.StatusConflict},
		{"invalid state", apperrors.InvalidStatef("completed"), http.StatusConflict},
		{"invalid argument", apperrors.InvalidArgumentf("self target"), http.StatusBadRequest},
		{"transient", apperrors.Transientf(assert.AnError, "store"), http.StatusServiceUnavailable},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()
			require.NoError(t, DomainErrorResponse(c, tt.err))
			assert.Equal(t, tt.expected, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.expected, resp.Code)
		})
	}
}
