// internal/api/handlers/report_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stockwise/backend-go/internal/api/middleware"
	"github.com/stockwise/backend-go/internal/engine"
	"github.com/stockwise/backend-go/internal/service"
)

type ReportHandler struct {
	service *service.ReportService
}

func NewReportHandler(service *service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) GetSalesSummary(c *gin.Context) {
	summary, err := h.service.GetSalesSummary(c.Request.Context(), middleware.TenantID(c), c.Param("period"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) GetFastMovers(c *gin.Context) {
	topN, _ := strconv.Atoi(c.DefaultQuery("top_n", "5"))
	if topN <= 0 {
		topN = engine.DefaultFastMoverLimit
	}

	movers, err := h.service.GetFastMovers(c.Request.Context(), middleware.TenantID(c), topN)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, movers)
}

func (h *ReportHandler) GetSlowMovers(c *gin.Context) {
	threshold, _ := strconv.ParseFloat(c.DefaultQuery("threshold", "10"), 64)

	movers, err := h.service.GetSlowMovers(c.Request.Context(), middleware.TenantID(c), threshold)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, movers)
}

func (h *ReportHandler) GetSalesHistory(c *gin.Context) {
	history, err := h.service.GetSalesHistory(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
