package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"boarding_house/internal/adapter/documents"
	"boarding_house/internal/adapter/http/handlers/mocks"
	"boarding_house/internal/domain/entities"
	"boarding_house/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleInvoiceDetails() usecase.InvoiceDetails {
	now := time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC)
	return usecase.InvoiceDetails{
		Invoice: entities.Invoice{
			ID:                "inv-1",
			RoomID:            "room-1",
			TenantID:          "t-1",
			Month:             "03/2025",
			Electricity:       entities.UtilityCharge{Old: 100, New: 150, Usage: 50, PriceSnapshot: 3500, Total: 175000},
			Water:             entities.UtilityCharge{Old: 10, New: 15, Usage: 5, PriceSnapshot: 15000, Total: 75000},
			Services:          []entities.ServiceFee{{Name: "Wifi", Price: 100000}},
			RoomPriceSnapshot: 1500000,
			TotalAmount:       1850000,
			Status:            entities.InvoiceStatusUnpaid,
			AccessKey:         "a1b2c3d4e5f6",
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		RoomName:    "A101",
		TenantName:  "Ana",
		TenantPhone: "0900",
	}
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing readings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/invoices", h.CreateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(`{"room_id":"room-1","month":"03/2025"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reading decreased", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/invoices", h.CreateInvoice)

		in := usecase.CreateInvoiceInput{RoomID: "room-1", Month: "03/2025", NewElectricity: 90, NewWater: 15}
		uc.EXPECT().CreateInvoice(gomock.Any(), in).Return(entities.Invoice{}, usecase.ErrReadingDecreased)

		req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(`{"room_id":"room-1","month":"03/2025","new_electricity":90,"new_water":15}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "READING_DECREASED") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("no price config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/invoices", h.CreateInvoice)

		uc.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, usecase.ErrPriceConfigMissing)

		req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(`{"room_id":"room-1","month":"03/2025","new_electricity":150,"new_water":15}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("room not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/invoices", h.CreateInvoice)

		uc.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, usecase.ErrRoomNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(`{"room_id":"room-x","month":"03/2025","new_electricity":150,"new_water":15}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with discount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/invoices", h.CreateInvoice)

		in := usecase.CreateInvoiceInput{RoomID: "room-1", TenantID: "t-1", Month: "3/2025", NewElectricity: 150, NewWater: 15, AdditionalFees: -50000}
		created := sampleInvoiceDetails().Invoice
		created.AdditionalFees = -50000
		created.TotalAmount = 1800000
		uc.EXPECT().CreateInvoice(gomock.Any(), in).Return(created, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(`{"room_id":"room-1","tenant_id":"t-1","month":"3/2025","new_electricity":150,"new_water":15,"additional_fees":-50000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if body["total_amount"] != 1800000.0 || body["access_key"] != "a1b2c3d4e5f6" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestInvoiceHandler_ListInvoicesByMonth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("month required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/api/invoices", h.ListInvoicesByMonth)

		req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/api/invoices", h.ListInvoicesByMonth)

		uc.EXPECT().ListInvoicesByMonth(gomock.Any(), "03/2025").Return([]usecase.InvoiceDetails{sampleInvoiceDetails()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/invoices?month=03/2025", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if len(body) != 1 || body[0]["room_name"] != "A101" || body[0]["tenant_name"] != "Ana" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestInvoiceHandler_PaymentSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non numeric month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/api/invoices/summary", h.PaymentSummary)

		req := httptest.NewRequest(http.MethodGet, "/api/invoices/summary?month=march&year=2025", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of range month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/api/invoices/summary", h.PaymentSummary)

		uc.EXPECT().PaymentSummaryByMonth(gomock.Any(), 13, 2025).Return(nil, usecase.ErrInvalidInvoiceMonth)

		req := httptest.NewRequest(http.MethodGet, "/api/invoices/summary?month=13&year=2025", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("defaults to current month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)
		h.now = func() time.Time { return time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC) }

		r := gin.New()
		r.GET("/api/invoices/summary", h.PaymentSummary)

		uc.EXPECT().PaymentSummaryByMonth(gomock.Any(), 7, 2025).Return([]usecase.RoomPaymentSummary{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/invoices/summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/api/invoices/summary", h.PaymentSummary)

		uc.EXPECT().PaymentSummaryByMonth(gomock.Any(), 3, 2025).Return([]usecase.RoomPaymentSummary{{
			RoomID:       "room-1",
			RoomName:     "A101",
			BasePrice:    1500000,
			TenantName:   "Ana",
			TotalAmount:  1850000,
			UnpaidAmount: 1850000,
			Invoices:     []usecase.InvoiceSummaryLine{{ID: "inv-1", Month: "03/2025", Status: entities.InvoiceStatusUnpaid, TotalAmount: 1850000, AccessKey: "a1b2c3d4e5f6"}},
		}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/invoices/summary?month=3&year=2025", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if len(body) != 1 || body[0]["is_paid"] != false {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestInvoiceHandler_ExportMonth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/api/invoices/export", h.ExportMonth)

		req := httptest.NewRequest(http.MethodGet, "/api/invoices/export?month=2025", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/api/invoices/export", h.ExportMonth)

		details := sampleInvoiceDetails()
		uc.EXPECT().PaymentSummaryByMonth(gomock.Any(), 3, 2025).Return([]usecase.RoomPaymentSummary{{
			RoomID:       "room-1",
			RoomName:     "A101",
			TotalAmount:  details.Invoice.TotalAmount,
			UnpaidAmount: details.Invoice.TotalAmount,
		}}, nil)
		uc.EXPECT().ListInvoicesByMonth(gomock.Any(), "03/2025").Return([]usecase.InvoiceDetails{details}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/invoices/export?month=2025-03", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != documents.ContentTypeXLSX {
			t.Fatalf("unexpected content type %q", got)
		}
		if !strings.Contains(w.Header().Get("Content-Disposition"), "invoices-2025-03.xlsx") {
			t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
		}
		if w.Body.Len() == 0 {
			t.Fatalf("expected workbook content")
		}
	})
}

func TestInvoiceHandler_MarkPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.PUT("/api/invoices/:id/pay", h.MarkPaid)

		uc.EXPECT().MarkInvoicePaid(gomock.Any(), "inv-x").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodPut, "/api/invoices/inv-x/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.PUT("/api/invoices/:id/pay", h.MarkPaid)

		uc.EXPECT().MarkInvoicePaid(gomock.Any(), "inv-1").Return(entities.Invoice{}, usecase.ErrInvoiceAlreadyPaid)

		req := httptest.NewRequest(http.MethodPut, "/api/invoices/inv-1/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.PUT("/api/invoices/:id/pay", h.MarkPaid)

		paid := sampleInvoiceDetails().Invoice
		paidAt := time.Now().UTC()
		paid.Status = entities.InvoiceStatusPaid
		paid.PaymentDate = &paidAt
		uc.EXPECT().MarkInvoicePaid(gomock.Any(), "inv-1").Return(paid, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/invoices/inv-1/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"status":"PAID"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_ListRoomInvoices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc)

	r := gin.New()
	r.GET("/api/rooms/:id/invoices", h.ListRoomInvoices)

	uc.EXPECT().ListRoomInvoices(gomock.Any(), "room-1").Return([]usecase.InvoiceDetails{sampleInvoiceDetails()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/rooms/room-1/invoices", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestInvoiceHandler_PublicInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/api/public/invoices/:key", h.GetPublicInvoice)

		uc.EXPECT().GetInvoiceByAccessKey(gomock.Any(), "nope").Return(usecase.InvoiceDetails{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/public/invoices/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/api/public/invoices/:key", h.GetPublicInvoice)

		uc.EXPECT().GetInvoiceByAccessKey(gomock.Any(), "a1b2c3d4e5f6").Return(sampleInvoiceDetails(), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/public/invoices/a1b2c3d4e5f6", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if body["tenant_phone"] != "0900" || body["room_name"] != "A101" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/api/public/invoices/:key/pdf", h.GetPublicInvoicePDF)

		uc.EXPECT().GetInvoiceByAccessKey(gomock.Any(), "a1b2c3d4e5f6").Return(sampleInvoiceDetails(), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/public/invoices/a1b2c3d4e5f6/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != documents.ContentTypePDF {
			t.Fatalf("unexpected content type %q", got)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("expected pdf content")
		}
	})
}
