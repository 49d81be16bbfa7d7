package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/middleware"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
	"github.com/BruksfildServices01/barber-dashboard/internal/session"
	"github.com/BruksfildServices01/barber-dashboard/internal/timezone"
	"github.com/BruksfildServices01/barber-dashboard/internal/validators"
)

// SessionDropper forgets the per-session state kept for a signed out user.
type SessionDropper interface {
	Drop(sessionID string)
}

type AuthHandler struct {
	accounts shop.AccountRepository
	sessions *session.Manager
	live     SessionDropper
	audit    *audit.Dispatcher

	// swapped in tests
	emailDomainOK func(email string) bool
}

func NewAuthHandler(
	accounts shop.AccountRepository,
	sessions *session.Manager,
	live SessionDropper,
	audit *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		accounts:      accounts,
		sessions:      sessions,
		live:          live,
		audit:         audit,
		emailDomainOK: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	BarbershopName    string `json:"barbershopName" binding:"required,max=100"`
	BarbershopSlug    string `json:"barbershopSlug" binding:"required,max=100"`
	BarbershopPhone   string `json:"barbershopPhone" binding:"max=20"`
	BarbershopAddress string `json:"barbershopAddress" binding:"max=255"`
	Timezone          string `json:"timezone"`

	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !h.emailDomainOK(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The e-mail domain does not look valid.")
		return
	}

	tz := strings.TrimSpace(req.Timezone)
	if tz == "" {
		tz = timezone.DefaultTimezone
	}
	if !timezone.IsValid(tz) {
		httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not create the account.")
		return
	}

	barbershop := models.Barbershop{
		Name:     strings.TrimSpace(req.BarbershopName),
		Slug:     strings.ToLower(strings.TrimSpace(req.BarbershopSlug)),
		Phone:    req.BarbershopPhone,
		Address:  req.BarbershopAddress,
		Timezone: tz,
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         "owner",
	}

	if err := h.accounts.CreateOwner(c.Request.Context(), &barbershop, &user); err != nil {
		writeError(c, "register", err)
		return
	}
	user.Barbershop = barbershop

	token, _, err := h.sessions.Issue(user.ID, user.BarbershopID, user.Role)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not start the session.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershop.ID,
		UserID:       audit.Ptr(user.ID),
		Action:       "account_registered",
		Entity:       "barbershop",
		EntityID:     audit.Ptr(barbershop.ID),
	})

	c.JSON(http.StatusCreated, authResponse(&user, token))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.accounts.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, shop.ErrUserNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid e-mail or password.")
			return
		}
		writeError(c, "login", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid e-mail or password.")
		return
	}

	token, _, err := h.sessions.Issue(user.ID, user.BarbershopID, user.Role)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not start the session.")
		return
	}

	c.JSON(http.StatusOK, authResponse(user, token))
}

// Logout revokes the token and drops the session's booking state.
func (h *AuthHandler) Logout(c *gin.Context) {
	s := middleware.SessionFrom(c)

	if err := h.sessions.Invalidate(c.Request.Context(), s); err != nil {
		writeError(c, "logout", err)
		return
	}
	h.live.Drop(s.ID)

	c.Status(http.StatusNoContent)
}

func authResponse(user *models.User, token string) gin.H {
	return gin.H{
		"user":       userJSON(user),
		"barbershop": user.Barbershop,
		"token":      token,
	}
}

func userJSON(user *models.User) gin.H {
	return gin.H{
		"id":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"phone":        user.Phone,
		"role":         user.Role,
		"barbershopId": user.BarbershopID,
	}
}
