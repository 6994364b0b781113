package handlers

import (
	"boarding_house/internal/adapter/documents"
	request "boarding_house/internal/adapter/http/dto/request"
	response "boarding_house/internal/adapter/http/dto/response"
	"boarding_house/internal/domain/entities"
	"boarding_house/internal/infrastructure/metrics"
	"boarding_house/internal/usecase"
	"boarding_house/pkg"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
	errInvalidMonthQuery     = pkg.NewDomainErrorSimple("INVALID_MONTH", "Query parameter month must be MM/YYYY or YYYY-MM", http.StatusBadRequest)
	errInvalidSummaryQuery   = pkg.NewDomainErrorSimple("INVALID_MONTH", "Query parameters month and year must be integers", http.StatusBadRequest)
	errDocumentFailed        = pkg.NewDomainErrorSimple("DOCUMENT_ERROR", "Failed to build document", http.StatusInternalServerError)
)

// InvoiceHandler handles invoice creation, payment and the public invoice view.
//
// Public routes only ever look invoices up by access key.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	now     func() time.Time
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, now: time.Now}
}

// CreateInvoice godoc
// @Summary      Bill a room from new meter readings
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      request.InvoiceRequest  true  "Readings"
// @Success      201   {object}  response.InvoiceResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.CreateInvoice(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[invoice][handler] create failed room_id=%q err=%v", payload.RoomID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

// ListInvoicesByMonth godoc
// @Summary      Invoices of a billing month
// @Tags         invoices
// @Produce      json
// @Param        month  query     string  true  "MM/YYYY"
// @Success      200    {array}   response.InvoiceDetailsResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /invoices [get]
func (h *InvoiceHandler) ListInvoicesByMonth(c *gin.Context) {
	month := strings.TrimSpace(c.Query("month"))
	if month == "" {
		c.JSON(errInvalidMonthQuery.HTTPStatus, errInvalidMonthQuery.ToHTTPError())
		return
	}

	invoices, err := h.usecase.ListInvoicesByMonth(c.Request.Context(), month)
	if err != nil {
		log.Printf("[invoice][handler] list by month failed month=%q err=%v", month, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoiceDetailsList(invoices))
}

// PaymentSummary godoc
// @Summary      Per-room payment summary of a month
// @Tags         invoices
// @Produce      json
// @Param        month  query     int  false  "1-12, defaults to the current month"
// @Param        year   query     int  false  "defaults to the current year"
// @Success      200    {array}   response.RoomPaymentSummaryResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /invoices/summary [get]
func (h *InvoiceHandler) PaymentSummary(c *gin.Context) {
	now := h.now()
	month, err := intQuery(c, "month", int(now.Month()))
	if err != nil {
		c.JSON(errInvalidSummaryQuery.HTTPStatus, errInvalidSummaryQuery.ToHTTPError())
		return
	}
	year, err := intQuery(c, "year", now.Year())
	if err != nil {
		c.JSON(errInvalidSummaryQuery.HTTPStatus, errInvalidSummaryQuery.ToHTTPError())
		return
	}

	summaries, err := h.usecase.PaymentSummaryByMonth(c.Request.Context(), month, year)
	if err != nil {
		log.Printf("[invoice][handler] summary failed month=%d year=%d err=%v", month, year, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRoomPaymentSummaries(summaries))
}

// ExportMonth godoc
// @Summary      Month workbook with the payment summary and every invoice
// @Tags         invoices
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        month  query  string  true  "MM/YYYY"
// @Success      200
// @Failure      400    {object}  pkg.HTTPError
// @Router       /invoices/export [get]
func (h *InvoiceHandler) ExportMonth(c *gin.Context) {
	start := time.Now()
	month, err := entities.NormalizeBillingMonth(c.Query("month"))
	if err != nil {
		metrics.ObserveDocumentExport(documents.FormatXLSX, metrics.ResultRejected, time.Since(start))
		c.JSON(errInvalidMonthQuery.HTTPStatus, errInvalidMonthQuery.ToHTTPError())
		return
	}

	var m, y int
	if _, err := fmt.Sscanf(month, "%d/%d", &m, &y); err != nil {
		metrics.ObserveDocumentExport(documents.FormatXLSX, metrics.ResultRejected, time.Since(start))
		c.JSON(errInvalidMonthQuery.HTTPStatus, errInvalidMonthQuery.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	summaries, err := h.usecase.PaymentSummaryByMonth(ctx, m, y)
	if err != nil {
		metrics.ObserveDocumentExport(documents.FormatXLSX, metrics.ResultError, time.Since(start))
		log.Printf("[invoice][handler] export summary failed month=%s err=%v", month, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	invoices, err := h.usecase.ListInvoicesByMonth(ctx, month)
	if err != nil {
		metrics.ObserveDocumentExport(documents.FormatXLSX, metrics.ResultError, time.Since(start))
		log.Printf("[invoice][handler] export list failed month=%s err=%v", month, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	content, err := documents.BuildMonthXLSX(month, summaries, invoices)
	if err != nil {
		log.Printf("[invoice][handler] export failed month=%s err=%v", month, err)
		metrics.ObserveDocumentExport(documents.FormatXLSX, metrics.ResultError, time.Since(start))
		c.JSON(errDocumentFailed.HTTPStatus, errDocumentFailed.ToHTTPError())
		return
	}

	metrics.ObserveDocumentExport(documents.FormatXLSX, metrics.ResultSuccess, time.Since(start))
	filename := fmt.Sprintf("invoices-%04d-%02d.xlsx", y, m)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, documents.ContentTypeXLSX, content)
}

// MarkPaid godoc
// @Summary      Confirm payment of an invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /invoices/{id}/pay [put]
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	invoice, err := h.usecase.MarkInvoicePaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[invoice][handler] mark paid failed invoice_id=%q err=%v", c.Param("id"), err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// ListRoomInvoices godoc
// @Summary      Invoice history of a room
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room ID"
// @Success      200  {array}   response.InvoiceDetailsResponse
// @Router       /rooms/{id}/invoices [get]
func (h *InvoiceHandler) ListRoomInvoices(c *gin.Context) {
	invoices, err := h.usecase.ListRoomInvoices(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[invoice][handler] list room invoices failed room_id=%q err=%v", c.Param("id"), err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoiceDetailsList(invoices))
}

// GetPublicInvoice godoc
// @Summary      Public invoice view
// @Tags         public
// @Produce      json
// @Param        key  path      string  true  "Access key"
// @Success      200  {object}  response.InvoiceDetailsResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /public/invoices/{key} [get]
func (h *InvoiceHandler) GetPublicInvoice(c *gin.Context) {
	details, err := h.usecase.GetInvoiceByAccessKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		log.Printf("[invoice][handler] public lookup failed err=%v", err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoiceDetails(details))
}

// GetPublicInvoicePDF godoc
// @Summary      Public invoice as PDF
// @Tags         public
// @Produce      application/pdf
// @Param        key  path  string  true  "Access key"
// @Success      200
// @Failure      404  {object}  pkg.HTTPError
// @Router       /public/invoices/{key}/pdf [get]
func (h *InvoiceHandler) GetPublicInvoicePDF(c *gin.Context) {
	start := time.Now()
	details, err := h.usecase.GetInvoiceByAccessKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		metrics.ObserveDocumentExport(documents.FormatPDF, metrics.ResultRejected, time.Since(start))
		log.Printf("[invoice][handler] public pdf lookup failed err=%v", err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	content, err := documents.BuildInvoicePDF(details)
	if err != nil {
		log.Printf("[invoice][handler] pdf failed invoice_id=%s err=%v", details.Invoice.ID, err)
		metrics.ObserveDocumentExport(documents.FormatPDF, metrics.ResultError, time.Since(start))
		c.JSON(errDocumentFailed.HTTPStatus, errDocumentFailed.ToHTTPError())
		return
	}

	metrics.ObserveDocumentExport(documents.FormatPDF, metrics.ResultSuccess, time.Since(start))
	filename := fmt.Sprintf("invoice-%s.pdf", details.Invoice.AccessKey)
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, documents.ContentTypePDF, content)
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidAccessKey),
		errors.Is(err, usecase.ErrInvalidReading),
		errors.Is(err, usecase.ErrInvalidInvoiceMonth),
		errors.Is(err, usecase.ErrInvalidRoomID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReadingDecreased):
		return pkg.NewDomainErrorSimple("READING_DECREASED", "New meter readings must not be lower than the previous ones", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPriceConfigMissing):
		return pkg.NewDomainErrorSimple("PRICE_CONFIG_MISSING", "No active price config", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoomHasNoResidents):
		return pkg.NewDomainErrorSimple("ROOM_HAS_NO_RESIDENTS", "Room has no resident tenants", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvoiceTenant):
		return pkg.NewDomainErrorSimple("INVALID_TENANT", "Tenant is not a resident of the room", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoomNotFound):
		return pkg.NewDomainErrorSimple("ROOM_NOT_FOUND", "Room not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice is already paid", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
