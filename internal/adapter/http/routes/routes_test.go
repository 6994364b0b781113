package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"boarding_house/internal/adapter/http/handlers"
	"boarding_house/internal/adapter/http/handlers/mocks"
	"boarding_house/internal/domain/entities"
	"boarding_house/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIRoomUseCase, *mocks.MockIInvoiceUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	roomUC := mocks.NewMockIRoomUseCase(ctrl)
	tenantUC := mocks.NewMockITenantUseCase(ctrl)
	priceConfigUC := mocks.NewMockIPriceConfigUseCase(ctrl)
	invoiceUC := mocks.NewMockIInvoiceUseCase(ctrl)

	r := gin.New()
	registerRoutes(
		r.Group(BasePath),
		handlers.NewRoomHandler(roomUC),
		handlers.NewTenantHandler(tenantUC),
		handlers.NewPriceConfigHandler(priceConfigUC),
		handlers.NewInvoiceHandler(invoiceUC),
	)
	return r, roomUC, invoiceUC
}

func TestRegisterRoutes(t *testing.T) {
	t.Run("ping", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("room routes", func(t *testing.T) {
		r, roomUC, invoiceUC := newTestRouter(t)

		roomUC.EXPECT().ListRooms(gomock.Any()).Return([]usecase.RoomDetails{}, nil)
		invoiceUC.EXPECT().ListRoomInvoices(gomock.Any(), "room-1").Return([]usecase.InvoiceDetails{}, nil)

		for _, path := range []string{"/api/rooms", "/api/rooms/room-1/invoices"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("%s: expected 200, got %d", path, w.Code)
			}
		}
	})

	t.Run("summary is not an invoice id", func(t *testing.T) {
		r, _, invoiceUC := newTestRouter(t)

		invoiceUC.EXPECT().PaymentSummaryByMonth(gomock.Any(), 3, 2025).Return([]usecase.RoomPaymentSummary{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/invoices/summary?month=3&year=2025", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("pay", func(t *testing.T) {
		r, _, invoiceUC := newTestRouter(t)

		invoiceUC.EXPECT().MarkInvoicePaid(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/invoices/inv-1/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
