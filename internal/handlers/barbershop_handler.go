package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/middleware"
	"github.com/BruksfildServices01/barber-dashboard/internal/timezone"
)

type BarbershopHandler struct {
	accounts shop.AccountRepository
}

func NewBarbershopHandler(accounts shop.AccountRepository) *BarbershopHandler {
	return &BarbershopHandler{accounts: accounts}
}

type UpdateBarbershopRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone    *string `json:"phone" binding:"omitempty,max=20"`
	Address  *string `json:"address" binding:"omitempty,max=255"`
	Timezone *string `json:"timezone"`
}

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	barbershopID := c.GetString(middleware.ContextBarbershopID)

	b, err := h.accounts.GetBarbershopByID(c.Request.Context(), barbershopID)
	if err != nil {
		writeError(c, "get_barbershop", err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// UpdateMeBarbershop changes the shop settings. A new timezone only applies
// to sessions started afterwards, since each session resolves it on mount.
func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	barbershopID := c.GetString(middleware.ContextBarbershopID)

	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.accounts.GetBarbershopByID(c.Request.Context(), barbershopID)
	if err != nil {
		writeError(c, "get_barbershop", err)
		return
	}

	if req.Name != nil {
		b.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		b.Phone = *req.Phone
	}
	if req.Address != nil {
		b.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
			return
		}
		b.Timezone = *req.Timezone
	}

	if err := h.accounts.UpdateBarbershop(c.Request.Context(), b); err != nil {
		writeError(c, "update_barbershop", err)
		return
	}

	c.JSON(http.StatusOK, b)
}
