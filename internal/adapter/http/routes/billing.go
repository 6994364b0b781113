package routes

import (
	"boarding_house/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	BasePath = "/api"

	PathPing           = "/ping"
	PathRooms          = "/rooms"
	PathTenants        = "/tenants"
	PathPriceConfig    = "/config"
	PathInvoices       = "/invoices"
	PathPublicInvoices = "/public/invoices"
)

func addRoomRoutes(rg *gin.RouterGroup, roomHandler *handlers.RoomHandler, tenantHandler *handlers.TenantHandler, invoiceHandler *handlers.InvoiceHandler) {
	rooms := rg.Group(PathRooms)
	{
		rooms.POST("", roomHandler.CreateRoom)
		rooms.GET("", roomHandler.ListRooms)
		rooms.GET("/:id", roomHandler.GetRoom)
		rooms.PUT("/:id", roomHandler.UpdateRoom)
		rooms.GET("/:id/tenants", tenantHandler.ListRoomTenants)
		rooms.POST("/:id/checkout", tenantHandler.CheckoutRoom)
		rooms.GET("/:id/invoices", invoiceHandler.ListRoomInvoices)
	}
}

func addTenantRoutes(rg *gin.RouterGroup, tenantHandler *handlers.TenantHandler) {
	tenants := rg.Group(PathTenants)
	{
		tenants.POST("", tenantHandler.AddTenant)
		tenants.POST("/:id/checkout", tenantHandler.CheckoutTenant)
	}
}

func addPriceConfigRoutes(rg *gin.RouterGroup, priceConfigHandler *handlers.PriceConfigHandler) {
	cfg := rg.Group(PathPriceConfig)
	{
		cfg.GET("", priceConfigHandler.GetPriceConfig)
		// POST kept for clients that create the first config.
		cfg.POST("", priceConfigHandler.UpsertPriceConfig)
		cfg.PUT("", priceConfigHandler.UpsertPriceConfig)
	}
}

func addInvoiceRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoicesByMonth)
		invoices.GET("/summary", invoiceHandler.PaymentSummary)
		invoices.GET("/export", invoiceHandler.ExportMonth)
		invoices.PUT("/:id/pay", invoiceHandler.MarkPaid)
	}
}

// Public routes are reachable by tenants holding an invoice access key.
func addPublicRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler) {
	public := rg.Group(PathPublicInvoices)
	{
		public.GET("/:key", invoiceHandler.GetPublicInvoice)
		public.GET("/:key/pdf", invoiceHandler.GetPublicInvoicePDF)
	}
}
