package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/middleware"
)

type MeHandler struct {
	accounts shop.AccountRepository
}

func NewMeHandler(accounts shop.AccountRepository) *MeHandler {
	return &MeHandler{accounts: accounts}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	user, err := h.accounts.GetUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, "get_me", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       userJSON(user),
		"barbershop": user.Barbershop,
	})
}
