// internal/api/handlers/inventory_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stockwise/backend-go/internal/api/middleware"
	"github.com/stockwise/backend-go/internal/domain"
	"github.com/stockwise/backend-go/internal/engine"
	"github.com/stockwise/backend-go/internal/service"
)

type InventoryHandler struct {
	service *service.InventoryService
}

func NewInventoryHandler(service *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// writeError maps the engine's error taxonomy to distinct status
// codes instead of a generic failure.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDomain):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *InventoryHandler) GetInventory(c *gin.Context) {
	items, err := h.service.GetInventory(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) GetAdvice(c *gin.Context) {
	decisions, err := h.service.GetReplenishmentAdvice(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, decisions)
}

func (h *InventoryHandler) GetPurchaseOrder(c *gin.Context) {
	lines, err := h.service.GeneratePurchaseOrder(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, lines)
}

func (h *InventoryHandler) ExportPurchaseOrder(c *gin.Context) {
	key, err := h.service.ExportPurchaseOrder(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"object_key": key})
}

func (h *InventoryHandler) GetExpiryAlerts(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days <= 0 {
		days = engine.DefaultExpiryWindowDays
	}

	alerts, err := h.service.GetExpiryAlerts(c.Request.Context(), middleware.TenantID(c), days)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

type recordSaleRequest struct {
	ProductID *int64   `json:"product_id"`
	Quantity  *float64 `json:"quantity"`
}

func (h *InventoryHandler) RecordSale(c *gin.Context) {
	var req recordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ProductID == nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id and quantity are required"})
		return
	}

	receipt, err := h.service.RecordSale(c.Request.Context(), middleware.TenantID(c), *req.ProductID, *req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sale recorded successfully",
		"revenue": receipt.Revenue,
		"profit":  receipt.Profit,
	})
}

func (h *InventoryHandler) UpdateStock(c *gin.Context) {
	var input service.UpdateStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.UpdateStock(c.Request.Context(), middleware.TenantID(c), input); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock updated successfully"})
}

type addProductRequest struct {
	ProductName        string  `json:"product_name"`
	CurrentStock       float64 `json:"current_stock"`
	SafetyStockLevel   float64 `json:"safety_stock_level"`
	ForecastedDemand   float64 `json:"forecasted_demand"`
	LeadTimeDays       int     `json:"lead_time_days"`
	AnnualDemand       float64 `json:"annual_demand"`
	OrderCostFixed     float64 `json:"order_cost_fixed"`
	HoldingCostPerUnit float64 `json:"holding_cost_per_unit"`
	ExpiryDate         string  `json:"expiry_date"`
}

func (h *InventoryHandler) AddProduct(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expiry_date must be YYYY-MM-DD"})
		return
	}

	item := &domain.InventoryItem{
		ProductName:        req.ProductName,
		CurrentStock:       req.CurrentStock,
		SafetyStockLevel:   req.SafetyStockLevel,
		ForecastedDemand:   req.ForecastedDemand,
		LeadTimeDays:       req.LeadTimeDays,
		AnnualDemand:       req.AnnualDemand,
		OrderCostFixed:     req.OrderCostFixed,
		HoldingCostPerUnit: req.HoldingCostPerUnit,
		ExpiryDate:         expiry,
	}

	if err := h.service.AddProduct(c.Request.Context(), middleware.TenantID(c), item); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product added successfully", "product_id": item.ProductID})
}

func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), middleware.TenantID(c), productID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
