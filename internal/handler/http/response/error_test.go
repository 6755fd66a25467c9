package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamato-foods/backoffice-go/internal/domain/auth"
	"github.com/yamato-foods/backoffice-go/internal/domain/report"
	"github.com/yamato-foods/backoffice-go/internal/domain/staff"
	"github.com/yamato-foods/backoffice-go/internal/domain/timeclock"
	"github.com/yamato-foods/backoffice-go/internal/pkg/validator"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"admin required", auth.ErrAdminPrivilegeRequired, http.StatusForbidden, "FORBIDDEN"},
		{"staff not found", staff.ErrStaffNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"staff inactive", staff.ErrStaffInactive, http.StatusForbidden, "FORBIDDEN"},
		{"event not found", timeclock.ErrEventNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"already corrected", timeclock.ErrEventCorrected, http.StatusConflict, "CONFLICT"},
		{"empty export", report.ErrExportEmpty, http.StatusNotFound, "NOT_FOUND"},
		{"unexpected", errors.New("pg: connection refused"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleError_WrappedSentinel(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	HandleError(rec, errors.Join(errors.New("context"), staff.ErrStaffNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleError_ValidationErrors(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "month", Message: "month must be between 1 and 12"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "month must be between 1 and 12", resp.Error.Details["month"])
}

func TestHandleError_HidesInternalDetails(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.NotContains(t, resp.Error.Message, "10.0.0.5")
}
