package routes

import (
	_ "boarding_house/docs" // This will be auto-generated
	"boarding_house/internal/adapter/http/handlers"
	repository2 "boarding_house/internal/adapter/persistence/repository"
	"boarding_house/internal/infrastructure/config"
	"boarding_house/internal/infrastructure/database"
	"boarding_house/internal/infrastructure/metrics"
	"boarding_house/internal/usecase"
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const tableBootstrapTimeout = 2 * time.Minute

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err.Error())
	}

	metrics.Init()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg)

	log.Printf("[http] listening addr=%s", cfg.Addr())
	err = router.Run(cfg.Addr())
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB(cfg.DynamoDB)

	if cfg.DynamoDB.AutoCreateTables {
		ctx, cancel := context.WithTimeout(context.Background(), tableBootstrapTimeout)
		defer cancel()
		if err := database.EnsureTables(ctx, ddb, database.TableSpecs(cfg.Tables)); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
	}

	roomRepo := repository2.NewRoomDynamoRepository(ddb, cfg.Tables.Rooms)
	tenantRepo := repository2.NewTenantDynamoRepository(ddb, cfg.Tables.Tenants)
	priceConfigRepo := repository2.NewPriceConfigDynamoRepository(ddb, cfg.Tables.PriceConfigs)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb, cfg.Tables.Invoices)

	roomUseCase := usecase.NewRoomUseCase(roomRepo, tenantRepo, invoiceRepo)
	tenantUseCase := usecase.NewTenantUseCase(tenantRepo, roomRepo)
	priceConfigUseCase := usecase.NewPriceConfigUseCase(priceConfigRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, roomRepo, tenantRepo, priceConfigRepo)

	registerRoutes(
		router.Group(BasePath),
		handlers.NewRoomHandler(roomUseCase),
		handlers.NewTenantHandler(tenantUseCase),
		handlers.NewPriceConfigHandler(priceConfigUseCase),
		handlers.NewInvoiceHandler(invoiceUseCase),
	)
}

func registerRoutes(
	api *gin.RouterGroup,
	roomHandler *handlers.RoomHandler,
	tenantHandler *handlers.TenantHandler,
	priceConfigHandler *handlers.PriceConfigHandler,
	invoiceHandler *handlers.InvoiceHandler,
) {
	addPingRoutes(api)
	addRoomRoutes(api, roomHandler, tenantHandler, invoiceHandler)
	addTenantRoutes(api, tenantHandler)
	addPriceConfigRoutes(api, priceConfigHandler)
	addInvoiceRoutes(api, invoiceHandler)
	addPublicRoutes(api, invoiceHandler)
}

func setMiddlewares() {
	router.Use(metrics.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
