package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "boarding_house_"

	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
)

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	invoiceCreateTotal *prometheus.CounterVec
	invoiceAmountTotal prometheus.Counter

	documentExportTotal   *prometheus.CounterVec
	documentExportLatency *prometheus.HistogramVec
)

// Init registers the service metrics on the default registerer.
func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)

		invoiceCreateTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "invoice_create_total",
				Help: "Total invoice creation attempts by result",
			},
			[]string{"result"},
		)
		invoiceAmountTotal = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "invoice_amount_total",
				Help: "Sum of the total amount of created invoices",
			},
		)

		documentExportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "document_export_total",
				Help: "Total document exports by format and result",
			},
			[]string{"format", "result"},
		)
		documentExportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "document_export_latency_seconds",
				Help:    "Document export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(
			httpRequests,
			httpLatency,
			invoiceCreateTotal,
			invoiceAmountTotal,
			documentExportTotal,
			documentExportLatency,
		)
	})
}

// GinMiddleware records request count and latency per matched route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		if httpRequests != nil {
			httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		}
		if httpLatency != nil {
			httpLatency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
		}
	}
}

// ObserveInvoiceCreate counts an invoice creation attempt. amount is added to
// the billed total only on success and only when positive: a counter cannot
// go down, so invoices whose discount brings the total to zero or below are
// counted in invoice_create_total but leave invoice_amount_total unchanged.
func ObserveInvoiceCreate(result string, amount float64) {
	if result == "" {
		result = ResultSuccess
	}
	if invoiceCreateTotal != nil {
		invoiceCreateTotal.WithLabelValues(result).Inc()
	}
	if result == ResultSuccess && amount > 0 && invoiceAmountTotal != nil {
		invoiceAmountTotal.Add(amount)
	}
}

// ObserveDocumentExport records export latency and result.
func ObserveDocumentExport(format, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = ResultSuccess
	}
	if documentExportTotal != nil {
		documentExportTotal.WithLabelValues(format, result).Inc()
	}
	if documentExportLatency != nil {
		documentExportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}
