package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/credistore/credistore_backend/internal/apperrors"
	"github.com/credistore/credistore_backend/internal/core/domain"
	portssvc "github.com/credistore/credistore_backend/internal/core/ports/services"
	"github.com/credistore/credistore_backend/internal/dto"
	"github.com/credistore/credistore_backend/internal/middleware"
)

// debtHandler handles HTTP requests related to the debt ledger.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{debtService: ds}
}

// registerDebtRoutes registers routes related to debts.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)

	debts := rg.Group("/debts")
	{
		debts.GET("", h.listDebts)
		debts.GET("/:id", h.getDebt)
		debts.PATCH("/:id/status", h.updateDebtStatus)
	}
}

// listDebts godoc
// @Summary List debts
// @Description Lists debts, optionally filtered by status.
// @Tags debts
// @Produce json
// @Param status query string false "Filter by status" Enums(active, pending, paid, settled)
// @Success 200 {array} dto.DebtResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	var status *domain.DebtStatus
	if raw := c.Query("status"); raw != "" {
		st := domain.DebtStatus(raw)
		if !st.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown debt status: " + raw})
			return
		}
		status = &st
	}

	debts, err := h.debtService.ListDebts(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list debts"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListDebtResponse(debts))
}

// getDebt godoc
// @Summary Get a debt by ID
// @Tags debts
// @Produce json
// @Param id path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{id} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	debt, err := h.debtService.GetDebtByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Debt not found"})
		} else {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve debt"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// updateDebtStatus godoc
// @Summary Update a debt's status
// @Description Sets the status and refreshes the last-updated timestamp. Typically used to mark an active debt as paid.
// @Tags debts
// @Accept json
// @Produce json
// @Param id path string true "Debt ID"
// @Param status body dto.UpdateDebtStatusRequest true "New status"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{id}/status [patch]
func (h *debtHandler) updateDebtStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateDebtStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateDebtStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	debt, err := h.debtService.UpdateDebtStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Debt not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update debt"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}
