package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-admin/internal/errors"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping() error { return p.err }

func TestHealthReportsHealthy(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(fakePinger{}).ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestHealthReportsUnhealthyDatabase(t *testing.T) {
	rec := httptest.NewRecorder()
	down := fakePinger{err: errors.NewAppError(errors.InternalError, "connection refused")}
	Health(down).ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "database unavailable", body["error"])
}
