package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/credistore/credistore_backend/internal/apperrors"
	portssvc "github.com/credistore/credistore_backend/internal/core/ports/services"
	"github.com/credistore/credistore_backend/internal/dto"
	"github.com/credistore/credistore_backend/internal/middleware"
)

// checkoutHandler handles cash and credit checkouts.
type checkoutHandler struct {
	checkoutService portssvc.CheckoutSvcFacade
}

func newCheckoutHandler(cs portssvc.CheckoutSvcFacade) *checkoutHandler {
	return &checkoutHandler{checkoutService: cs}
}

// registerCheckoutRoutes registers the checkout routes.
func registerCheckoutRoutes(rg *gin.RouterGroup, checkoutService portssvc.CheckoutSvcFacade) {
	h := newCheckoutHandler(checkoutService)

	checkout := rg.Group("/checkout")
	{
		checkout.POST("/sale", h.processSale)
		checkout.POST("/debt", h.processDebt)
	}
}

// processSale godoc
// @Summary Process a cash sale
// @Description Records a sale with denormalized line items and decrements stock. All products must resolve or the whole operation is rejected.
// @Tags checkout
// @Accept json
// @Produce json
// @Param sale body dto.ProcessSaleRequest true "Sale line items"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Insufficient stock under the reject policy"
// @Security BearerAuth
// @Router /checkout/sale [post]
func (h *checkoutHandler) processSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ProcessSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for processSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	sale, err := h.checkoutService.ProcessSale(c.Request.Context(), req)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// processDebt godoc
// @Summary Process a credit sale
// @Description Records a debt for a known customer with an embedded customer snapshot. Missing customer or product rejects the whole operation.
// @Tags checkout
// @Accept json
// @Produce json
// @Param debt body dto.ProcessDebtRequest true "Customer, due date and line items"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Insufficient stock under the reject policy"
// @Security BearerAuth
// @Router /checkout/debt [post]
func (h *checkoutHandler) processDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ProcessDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for processDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	debt, err := h.checkoutService.ProcessDebt(c.Request.Context(), req)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt))
}

func respondCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientStock):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process checkout"})
	}
}
