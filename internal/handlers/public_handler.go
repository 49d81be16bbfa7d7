package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/booking"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/httpresp"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the client-facing intake. Everything it creates
// starts as a pending booking for staff to accept or cancel.
type PublicHandler struct {
	accounts shop.AccountRepository
	barbers  shop.BarberRepository
	services shop.ServiceRepository
	bookings domain.Repository
	audit    *audit.Dispatcher
}

func NewPublicHandler(
	accounts shop.AccountRepository,
	barbers shop.BarberRepository,
	services shop.ServiceRepository,
	bookings domain.Repository,
	audit *audit.Dispatcher,
) *PublicHandler {
	return &PublicHandler{
		accounts: accounts,
		barbers:  barbers,
		services: services,
		bookings: bookings,
		audit:    audit,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	ClientName     string `json:"clientName" binding:"required,max=100"`
	ServiceOrdered string `json:"serviceOrdered" binding:"max=100"`
	StyleOrdered   string `json:"styleOrdered" binding:"max=100"`
	BarberName     string `json:"barberName" binding:"max=100"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time"`                    // HH:mm
}

func (h *PublicHandler) barbershop(c *gin.Context) (*models.Barbershop, bool) {
	b, err := h.accounts.GetBarbershopBySlug(c.Request.Context(), strings.ToLower(c.Param("slug")))
	if err != nil {
		writeError(c, "get_barbershop", err)
		return nil, false
	}
	return b, true
}

////////////////////////////////////////////////////////
// CATALOGUE
////////////////////////////////////////////////////////

// ListServices only shows entries marked Available.
func (h *PublicHandler) ListServices(c *gin.Context) {
	b, ok := h.barbershop(c)
	if !ok {
		return
	}

	filter, err := shop.NewServiceFilter(c.Query("kind"), models.ServiceAvailable, c.Query("query"))
	if err != nil {
		writeError(c, "list_services", err)
		return
	}

	services, err := h.services.List(c.Request.Context(), b.ID, filter)
	if err != nil {
		writeError(c, "list_services", err)
		return
	}
	httpresp.List(c, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	b, ok := h.barbershop(c)
	if !ok {
		return
	}

	barbers, err := h.barbers.List(c.Request.Context(), b.ID, true)
	if err != nil {
		writeError(c, "list_barbers", err)
		return
	}

	// contact details stay private
	out := make([]gin.H, 0, len(barbers))
	for _, br := range barbers {
		out = append(out, gin.H{"id": br.ID, "fullName": br.FullName})
	}
	httpresp.List(c, out)
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	b, ok := h.barbershop(c)
	if !ok {
		return
	}

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if strings.TrimSpace(req.ServiceOrdered) == "" && strings.TrimSpace(req.StyleOrdered) == "" {
		httperr.BadRequest(c, "missing_service", "Choose a service or a style.")
		return
	}

	date, err := parseBookingDate(req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Use YYYY-MM-DD and HH:mm.")
		return
	}

	booking := models.Booking{
		BarbershopID:   b.ID,
		ClientName:     strings.TrimSpace(req.ClientName),
		ServiceOrdered: strings.TrimSpace(req.ServiceOrdered),
		StyleOrdered:   strings.TrimSpace(req.StyleOrdered),
		BarberName:     strings.TrimSpace(req.BarberName),
		Date:           date,
		Time:           req.Time,
	}

	if err := h.bookings.Create(c.Request.Context(), &booking); err != nil {
		writeError(c, "create_booking", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: b.ID,
		Action:       "booking_created",
		Entity:       "booking",
		EntityID:     audit.Ptr(booking.ID),
		Metadata:     gin.H{"source": "public"},
	})

	c.JSON(http.StatusCreated, booking)
}
