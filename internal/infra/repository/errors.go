package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/booking"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
)

// classify maps storage errors onto the booking error taxonomy.
func classify(op string, err error) error {
	return classifyAs(op, err, domain.ErrNotFound, domain.ErrInvalidRecord)
}

func classifyShop(op string, err, notFound error) error {
	return classifyAs(op, err, notFound, shop.ErrInvalidRecord)
}

// classifyAs is shared by every repository. Anything that is neither a
// missing row nor a rejected value counts as the store being unreachable.
func classifyAs(op string, err, notFound, invalid error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case "22", "23": // data exception, integrity constraint violation
			return fmt.Errorf("%w: %s: %s", invalid, op, pgErr.Message)
		}
	}

	return fmt.Errorf("%w: %s: %v", domain.ErrRemoteUnavailable, op, err)
}

// uniqueViolation returns the constraint name of a duplicate key error.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}
