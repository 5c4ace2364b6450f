package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/credistore/credistore_backend/internal/core/domain"
	portssvc "github.com/credistore/credistore_backend/internal/core/ports/services"
)

// reportingHandler serves the derived read-only views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/period", h.periodReport)
		reports.GET("/low-stock", h.lowStock)
		reports.GET("/inventory-valuation", h.inventoryValuation)
		reports.GET("/debt-summary", h.debtSummary)
		reports.GET("/top-products", h.topProducts)
		reports.GET("/product-details", h.productDetails)
		reports.GET("/customer-debts", h.customerDebts)
		reports.GET("/overdue-debts", h.overdueDebts)
		reports.GET("/upcoming-debts", h.upcomingDebts)
		reports.GET("/active-debts", h.activeDebts)
	}
}

// queryLimit parses an optional positive ?limit= parameter, falling back to def.
func queryLimit(c *gin.Context, def int) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
		return 0, false
	}
	return n, true
}

// periodReport godoc
// @Summary Sales report for a day or month
// @Description Aggregates closed and open activity within the period containing the given date.
// @Tags reports
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Param granularity query string false "Window size" Enums(day, month) default(day)
// @Success 200 {object} domain.PeriodReport
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/period [get]
func (h *reportingHandler) periodReport(c *gin.Context) {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	granularity := domain.GranularityDay
	switch raw := c.Query("granularity"); raw {
	case "", string(domain.GranularityDay):
	case string(domain.GranularityMonth):
		granularity = domain.GranularityMonth
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "granularity must be day or month"})
		return
	}

	report, err := h.reportingService.PeriodReport(c.Request.Context(), date, granularity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// lowStock godoc
// @Summary Products at or below their minimum stock
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum rows" default(20)
// @Success 200 {array} domain.Product
// @Security BearerAuth
// @Router /reports/low-stock [get]
func (h *reportingHandler) lowStock(c *gin.Context) {
	limit, ok := queryLimit(c, 20)
	if !ok {
		return
	}
	products, err := h.reportingService.LowStockProducts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// inventoryValuation godoc
// @Summary Inventory valuation at cost and retail
// @Tags reports
// @Produce json
// @Success 200 {object} domain.InventoryValuation
// @Security BearerAuth
// @Router /reports/inventory-valuation [get]
func (h *reportingHandler) inventoryValuation(c *gin.Context) {
	valuation, err := h.reportingService.InventoryValuation(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, valuation)
}

// debtSummary godoc
// @Summary Debt counts and totals by status
// @Tags reports
// @Produce json
// @Param status query string false "Restrict to one status" Enums(active, pending, paid, settled)
// @Success 200 {array} domain.DebtStatusCount
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/debt-summary [get]
func (h *reportingHandler) debtSummary(c *gin.Context) {
	var status *domain.DebtStatus
	if raw := c.Query("status"); raw != "" {
		st := domain.DebtStatus(raw)
		if !st.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown debt status: " + raw})
			return
		}
		status = &st
	}

	summary, err := h.reportingService.DebtSummary(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// topProducts godoc
// @Summary Best sellers by units sold
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum rows" default(5)
// @Success 200 {array} domain.TopProduct
// @Security BearerAuth
// @Router /reports/top-products [get]
func (h *reportingHandler) topProducts(c *gin.Context) {
	limit, ok := queryLimit(c, 5)
	if !ok {
		return
	}
	top, err := h.reportingService.TopSellingProducts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, top)
}

// productDetails godoc
// @Summary Catalog products matching a name
// @Tags reports
// @Produce json
// @Param name query string false "Case-insensitive name fragment, empty for all"
// @Success 200 {array} domain.Product
// @Security BearerAuth
// @Router /reports/product-details [get]
func (h *reportingHandler) productDetails(c *gin.Context) {
	products, err := h.reportingService.ProductDetails(c.Request.Context(), c.Query("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// customerDebts godoc
// @Summary Debts for customers matching a name
// @Tags reports
// @Produce json
// @Param name query string true "Case-insensitive name fragment"
// @Success 200 {array} domain.CustomerDebtRow
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/customer-debts [get]
func (h *reportingHandler) customerDebts(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name query parameter is required"})
		return
	}
	rows, err := h.reportingService.CustomerDebts(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// overdueDebts godoc
// @Summary Active debts past their due date
// @Tags reports
// @Produce json
// @Success 200 {array} domain.CustomerDebtRow
// @Security BearerAuth
// @Router /reports/overdue-debts [get]
func (h *reportingHandler) overdueDebts(c *gin.Context) {
	rows, err := h.reportingService.OverdueDebts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// upcomingDebts godoc
// @Summary Active debts due within the next N days
// @Tags reports
// @Produce json
// @Param days query int false "Horizon in days" default(7)
// @Success 200 {array} domain.CustomerDebtRow
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/upcoming-debts [get]
func (h *reportingHandler) upcomingDebts(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "days must be a positive integer"})
			return
		}
		days = n
	}
	rows, err := h.reportingService.UpcomingDebts(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// activeDebts godoc
// @Summary Open debts, most recent first
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum rows" default(20)
// @Success 200 {array} domain.CustomerDebtRow
// @Security BearerAuth
// @Router /reports/active-debts [get]
func (h *reportingHandler) activeDebts(c *gin.Context) {
	limit, ok := queryLimit(c, 20)
	if !ok {
		return
	}
	rows, err := h.reportingService.ActiveDebts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
