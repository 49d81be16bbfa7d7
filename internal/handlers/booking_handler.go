package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/booking"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/httpresp"
	"github.com/BruksfildServices01/barber-dashboard/internal/middleware"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
	"github.com/BruksfildServices01/barber-dashboard/internal/session"
	"github.com/BruksfildServices01/barber-dashboard/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barber-dashboard/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// ControllerSource hands out the booking controller bound to a session.
type ControllerSource interface {
	Get(ctx context.Context, s session.Session) (*ucBooking.Controller, error)
}

type BookingHandler struct {
	controllers ControllerSource
}

func NewBookingHandler(controllers ControllerSource) *BookingHandler {
	return &BookingHandler{controllers: controllers}
}

type IntentRequest struct {
	Action string `json:"action" binding:"required"`
}

type todayViewResponse struct {
	Date  string           `json:"date"`
	Items []models.Booking `json:"items"`
}

func (h *BookingHandler) controller(c *gin.Context) (*ucBooking.Controller, bool) {
	ctrl, err := h.controllers.Get(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		writeError(c, "load_bookings", err)
		return nil, false
	}
	return ctrl, true
}

// ======================================================
// LIST / REFRESH
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	httpresp.List(c, ctrl.Bookings())
}

// Refresh reloads the set from the store, picking up other sessions' writes.
func (h *BookingHandler) Refresh(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	if err := ctrl.Load(c.Request.Context()); err != nil {
		writeError(c, "refresh_bookings", err)
		return
	}
	httpresp.List(c, ctrl.Bookings())
}

// ======================================================
// TODAY VIEW
// ======================================================

// Today returns the view for ?date=YYYY-MM-DD, or for the currently selected
// day when the parameter is absent.
func (h *BookingHandler) Today(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	view := ctrl.TodayView()

	if dateStr := strings.TrimSpace(c.Query("date")); dateStr != "" {
		date, err := timezone.ParseDate(dateStr, ctrl.Location())
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Use the YYYY-MM-DD format.")
			return
		}
		view = ctrl.SelectDate(date)
	}

	c.JSON(http.StatusOK, todayViewResponse{
		Date:  view.Date.Format(dateLayout),
		Items: view.Items,
	})
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *BookingHandler) Accept(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	b, err := ctrl.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "accept_booking", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	b, err := ctrl.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "cancel_booking", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ======================================================
// INTENTS
// ======================================================

func (h *BookingHandler) RequestIntent(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	var req IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	action, err := domain.ParseAction(req.Action)
	if err != nil {
		writeError(c, "request_intent", err)
		return
	}

	in, err := ctrl.Request(c.Param("id"), action)
	if err != nil {
		writeError(c, "request_intent", err)
		return
	}
	c.JSON(http.StatusOK, in)
}

func (h *BookingHandler) GetIntent(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	in, found := ctrl.Intent()
	if !found {
		writeError(c, "get_intent", domain.ErrNoPendingIntent)
		return
	}
	c.JSON(http.StatusOK, in)
}

func (h *BookingHandler) ConfirmIntent(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	in, b, err := ctrl.Confirm(c.Request.Context())
	if err != nil {
		writeError(c, "confirm_intent", err)
		return
	}

	if b == nil {
		c.JSON(http.StatusOK, gin.H{"deleted": in.BookingID})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) DismissIntent(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	ctrl.Dismiss()
	c.Status(http.StatusNoContent)
}
