package validators

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Record checks the `validate` tags of a stored entity before it is written.
func Record(v any) error {
	return instance().Struct(v)
}

// Var checks a single value against a tag expression, e.g. "oneof=a b".
func Var(v any, tag string) error {
	return instance().Var(v, tag)
}
