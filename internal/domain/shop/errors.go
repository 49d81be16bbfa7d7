package shop

import "github.com/BruksfildServices01/barber-dashboard/internal/httperr"

var (
	ErrBarbershopNotFound = httperr.ErrBusiness("barbershop_not_found")
	ErrUserNotFound       = httperr.ErrBusiness("user_not_found")
	ErrSlugTaken          = httperr.ErrBusiness("slug_already_exists")
	ErrEmailTaken         = httperr.ErrBusiness("email_already_exists")

	ErrBarberNotFound  = httperr.ErrBusiness("barber_not_found")
	ErrServiceNotFound = httperr.ErrBusiness("service_not_found")

	ErrInvalidRecord = httperr.ErrBusiness("invalid_record")
	ErrInvalidFilter = httperr.ErrBusiness("invalid_filter")
)
