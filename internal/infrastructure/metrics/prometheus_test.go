package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

func TestMovementCounters(t *testing.T) {
	m := New()
	m.MovementApplied(entity.MovementPurchase, 10)
	m.MovementApplied(entity.MovementPurchase, 5)
	m.MovementRejected(entity.MovementSale, "insufficient_stock")
	m.MovementRejected(entity.MovementType("transfer"), "invalid")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.movementsApplied.WithLabelValues("purchase")))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.unitsMoved.WithLabelValues("purchase")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.movementsRejected.WithLabelValues("sale", "insufficient_stock")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.movementsRejected.WithLabelValues("invalid", "invalid")),
		"free-form types must not create new label values")
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveHTTP(http.MethodGet, "/api/products", 200, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `stock_api_http_requests_total{method="GET",route="/api/products",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
