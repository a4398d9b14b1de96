// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stockwise/backend-go/internal/api/handlers"
	"github.com/stockwise/backend-go/internal/api/middleware"
	"github.com/stockwise/backend-go/internal/service"
)

type Services struct {
	InventoryService *service.InventoryService
	ReportService    *service.ReportService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(
		middleware.Logger(),
		middleware.Recovery(),
	)

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")
	apiGroup.Use(middleware.Tenant())

	if services != nil {
		if services.InventoryService != nil {
			inventoryHandler := handlers.NewInventoryHandler(services.InventoryService)
			inventoryGroup := apiGroup.Group("/inventory")
			{
				inventoryGroup.GET("", inventoryHandler.GetInventory)
				inventoryGroup.POST("", inventoryHandler.AddProduct)
				inventoryGroup.DELETE("/:id", inventoryHandler.DeleteProduct)
				inventoryGroup.GET("/advice", inventoryHandler.GetAdvice)
				inventoryGroup.GET("/expiry_alerts", inventoryHandler.GetExpiryAlerts)
			}

			apiGroup.GET("/purchase_order", inventoryHandler.GetPurchaseOrder)
			apiGroup.POST("/purchase_order/export", inventoryHandler.ExportPurchaseOrder)
			apiGroup.POST("/sales", inventoryHandler.RecordSale)
			apiGroup.POST("/stock/adjust", inventoryHandler.UpdateStock)
		}

		if services.ReportService != nil {
			reportHandler := handlers.NewReportHandler(services.ReportService)
			reportGroup := apiGroup.Group("/reports")
			{
				reportGroup.GET("/sales_summary/:period", reportHandler.GetSalesSummary)
				reportGroup.GET("/fast_movers", reportHandler.GetFastMovers)
				reportGroup.GET("/slow_movers", reportHandler.GetSlowMovers)
				reportGroup.GET("/sales_history", reportHandler.GetSalesHistory)
			}
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
