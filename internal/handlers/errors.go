package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/booking"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
)

// businessStatus maps business codes onto HTTP statuses. Codes not listed
// here are treated as bad requests.
var businessStatus = map[string]int{
	"booking_not_found":    http.StatusNotFound,
	"barbershop_not_found": http.StatusNotFound,
	"user_not_found":       http.StatusNotFound,
	"barber_not_found":     http.StatusNotFound,
	"service_not_found":    http.StatusNotFound,

	"invalid_state":        http.StatusConflict,
	"no_pending_intent":    http.StatusConflict,
	"slug_already_exists":  http.StatusConflict,
	"email_already_exists": http.StatusConflict,

	"image_too_large": http.StatusRequestEntityTooLarge,
}

var businessMessages = map[string]string{
	"booking_not_found":    "Booking not found.",
	"barbershop_not_found": "Barbershop not found.",
	"user_not_found":       "User not found.",
	"barber_not_found":     "Barber not found.",
	"service_not_found":    "Service not found.",
	"invalid_state":        "The booking is no longer in a state that allows this action.",
	"no_pending_intent":    "There is no pending action to confirm.",
	"slug_already_exists":  "This barbershop address is already taken.",
	"email_already_exists": "This e-mail is already registered.",
	"invalid_booking":      "Invalid booking data.",
	"invalid_record":       "Invalid data.",
	"invalid_action":       "Unknown action.",
	"invalid_filter":       "Invalid filter.",
	"unsupported_image":    "Unsupported image format.",
	"image_too_large":      "Image is too large.",
}

// writeError answers with the status that matches err. Storage outages
// become 503, anything unexpected 500.
func writeError(c *gin.Context, op string, err error) {
	if code := httperr.Code(err); code != "" {
		status, ok := businessStatus[code]
		if !ok {
			status = http.StatusBadRequest
		}
		httperr.Write(c, status, code, businessMessages[code])
		return
	}

	log.Printf("%s: %v", op, err)

	if errors.Is(err, domain.ErrRemoteUnavailable) {
		httperr.Unavailable(c, "store_unavailable", "The data store is unreachable, try again.")
		return
	}

	httperr.Internal(c, op+"_failed", "Unexpected error.")
}
