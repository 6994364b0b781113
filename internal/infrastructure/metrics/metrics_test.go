package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveInvoiceCreate(t *testing.T) {
	Init()

	beforeOK := testutil.ToFloat64(invoiceCreateTotal.WithLabelValues(ResultSuccess))
	beforeRejected := testutil.ToFloat64(invoiceCreateTotal.WithLabelValues(ResultRejected))
	beforeAmount := testutil.ToFloat64(invoiceAmountTotal)

	ObserveInvoiceCreate(ResultSuccess, 1500)
	ObserveInvoiceCreate(ResultRejected, 900)
	ObserveInvoiceCreate("", 0)

	if got := testutil.ToFloat64(invoiceCreateTotal.WithLabelValues(ResultSuccess)) - beforeOK; got != 2 {
		t.Fatalf("expected 2 successes, got %v", got)
	}
	if got := testutil.ToFloat64(invoiceCreateTotal.WithLabelValues(ResultRejected)) - beforeRejected; got != 1 {
		t.Fatalf("expected 1 rejection, got %v", got)
	}
	if got := testutil.ToFloat64(invoiceAmountTotal) - beforeAmount; got != 1500 {
		t.Fatalf("expected amount 1500, got %v", got)
	}
}

func TestObserveInvoiceCreate_NonPositiveTotal(t *testing.T) {
	Init()

	beforeOK := testutil.ToFloat64(invoiceCreateTotal.WithLabelValues(ResultSuccess))
	beforeAmount := testutil.ToFloat64(invoiceAmountTotal)

	ObserveInvoiceCreate(ResultSuccess, 0)
	ObserveInvoiceCreate(ResultSuccess, -250000)

	if got := testutil.ToFloat64(invoiceCreateTotal.WithLabelValues(ResultSuccess)) - beforeOK; got != 2 {
		t.Fatalf("expected 2 successes, got %v", got)
	}
	if got := testutil.ToFloat64(invoiceAmountTotal) - beforeAmount; got != 0 {
		t.Fatalf("expected amount unchanged, got %v", got)
	}
}

func TestObserveDocumentExport(t *testing.T) {
	Init()

	before := testutil.ToFloat64(documentExportTotal.WithLabelValues("unknown", ResultError))
	ObserveDocumentExport("", ResultError, time.Millisecond)
	if got := testutil.ToFloat64(documentExportTotal.WithLabelValues("unknown", ResultError)) - before; got != 1 {
		t.Fatalf("expected 1 export, got %v", got)
	}
}

func TestGinMiddleware(t *testing.T) {
	Init()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/api/rooms/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/rooms/:id", "204"))

	req := httptest.NewRequest(http.MethodGet, "/api/rooms/room-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/rooms/:id", "204")) - before; got != 1 {
		t.Fatalf("expected 1 request recorded, got %v", got)
	}
}
