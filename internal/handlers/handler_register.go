package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/credistore/credistore_backend/internal/apperrors"
	portssvc "github.com/credistore/credistore_backend/internal/core/ports/services"
	"github.com/credistore/credistore_backend/internal/dto"
)

// registerHandler handles cash-register closure requests.
type registerHandler struct {
	checkoutService portssvc.CheckoutSvcFacade
}

func newRegisterHandler(cs portssvc.CheckoutSvcFacade) *registerHandler {
	return &registerHandler{checkoutService: cs}
}

// registerRegisterRoutes registers the cash-register routes.
func registerRegisterRoutes(rg *gin.RouterGroup, checkoutService portssvc.CheckoutSvcFacade) {
	h := newRegisterHandler(checkoutService)

	register := rg.Group("/register")
	{
		register.POST("/close", h.closeRegister)
		register.GET("/closures", h.listClosures)
		register.GET("/current", h.currentDay)
	}
}

// closeRegister godoc
// @Summary Close the cash register
// @Description Archives the open sales and debts into a dated closure and clears the working sets.
// @Tags register
// @Produce json
// @Success 201 {object} dto.ClosureResponse
// @Failure 409 {object} ErrorResponse "Nothing to close"
// @Security BearerAuth
// @Router /register/close [post]
func (h *registerHandler) closeRegister(c *gin.Context) {
	closure, err := h.checkoutService.CloseCashRegister(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyClosure) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "No open sales or debts to close"})
		} else {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to close register"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToClosureResponse(closure))
}

// listClosures godoc
// @Summary List cash-register closures
// @Tags register
// @Produce json
// @Success 200 {array} dto.ClosureResponse
// @Security BearerAuth
// @Router /register/closures [get]
func (h *registerHandler) listClosures(c *gin.Context) {
	closures, err := h.checkoutService.ListClosures(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list closures"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListClosureResponse(closures))
}

// currentDay godoc
// @Summary Current working sets
// @Description Returns the open sales and debts with cash, credit and combined totals.
// @Tags register
// @Produce json
// @Success 200 {object} dto.CurrentDayResponse
// @Security BearerAuth
// @Router /register/current [get]
func (h *registerHandler) currentDay(c *gin.Context) {
	sales, debts, err := h.checkoutService.CurrentDay(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load current day"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrentDayResponse(sales, debts))
}
