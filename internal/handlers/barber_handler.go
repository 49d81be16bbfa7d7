package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/httpresp"
	"github.com/BruksfildServices01/barber-dashboard/internal/middleware"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

type BarberHandler struct {
	barbers shop.BarberRepository
	audit   *audit.Dispatcher
}

func NewBarberHandler(barbers shop.BarberRepository, audit *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{barbers: barbers, audit: audit}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	FullName      string `json:"fullName" binding:"required"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
	Email         string `json:"email"`
	Available     *bool  `json:"available"`
}

type AvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	barbershopID := c.GetString(middleware.ContextBarbershopID)
	onlyAvailable := c.Query("available") == "true"

	barbers, err := h.barbers.List(c.Request.Context(), barbershopID, onlyAvailable)
	if err != nil {
		writeError(c, "list_barbers", err)
		return
	}
	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	barbershopID := c.GetString(middleware.ContextBarbershopID)

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	barber := models.Barber{
		BarbershopID:  barbershopID,
		FullName:      strings.TrimSpace(req.FullName),
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		Address:       strings.TrimSpace(req.Address),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Available:     req.Available == nil || *req.Available,
	}

	if err := h.barbers.Create(c.Request.Context(), &barber); err != nil {
		writeError(c, "create_barber", err)
		return
	}

	h.record(c, "barber_created", barber.ID, nil)
	httpresp.Created(c, barber)
}

func (h *BarberHandler) SetAvailability(c *gin.Context) {
	barbershopID := c.GetString(middleware.ContextBarbershopID)

	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	barber, err := h.barbers.SetAvailability(c.Request.Context(), barbershopID, c.Param("id"), *req.Available)
	if err != nil {
		writeError(c, "set_availability", err)
		return
	}

	h.record(c, "barber_availability_changed", barber.ID, gin.H{"available": barber.Available})
	c.JSON(http.StatusOK, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	barbershopID := c.GetString(middleware.ContextBarbershopID)
	id := c.Param("id")

	if err := h.barbers.Delete(c.Request.Context(), barbershopID, id); err != nil {
		writeError(c, "delete_barber", err)
		return
	}

	h.record(c, "barber_deleted", id, nil)
	c.Status(http.StatusNoContent)
}

func (h *BarberHandler) record(c *gin.Context, action, id string, meta any) {
	h.audit.Dispatch(audit.Event{
		BarbershopID: c.GetString(middleware.ContextBarbershopID),
		UserID:       audit.Ptr(c.GetString(middleware.ContextUserID)),
		Action:       action,
		Entity:       "barber",
		EntityID:     audit.Ptr(id),
		Metadata:     meta,
	})
}
