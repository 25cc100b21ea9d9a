package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lendhub-backend/internal/domain/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_Mapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantCode   int
		wantKind   string
		retryAfter bool
	}{
		{"validation", errs.Validation("status", "bad status"), http.StatusUnprocessableEntity, "validation", false},
		{"not found", fmt.Errorf("get: %w", errs.NotFound("lead not found")), http.StatusNotFound, "not_found", false},
		{"store", errs.Store("update lead", errors.New("constraint")), http.StatusInternalServerError, "store", false},
		{"retryable", errs.Store("update lead", context.DeadlineExceeded), http.StatusServiceUnavailable, "store", true},
		{"unclassified", errors.New("plain"), http.StatusInternalServerError, "store", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			require.NoError(t, writeError(c, tc.err))

			assert.Equal(t, tc.wantCode, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantKind, body.Code)
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, tc.retryAfter, rec.Header().Get("Retry-After") != "")
		})
	}
}

func TestWriteError_StoreDetailNotLeaked(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, writeError(c, errs.Store("update lead", errors.New("pq: password authentication failed"))))
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestWriteError_ValidationCarriesField(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, writeError(c, errs.Validation("note", "note is required")))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Details, 1)
	assert.Equal(t, "note", body.Details[0].Field)
}
