package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counts(t *testing.T) {
	r := NewRecorder()

	r.CheckDone(StatusCompleted)
	r.CheckDone(StatusCompleted)
	r.CheckDone(StatusFailed)
	r.Scored("pdf", 72)
	r.Scored("raw", 15)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.checks.WithLabelValues(StatusCompleted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.checks.WithLabelValues(StatusFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.extractions.WithLabelValues("pdf")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.scores))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.CheckDone(StatusInvalid)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `atschecker_checks_total{status="invalid"} 1`)
}
