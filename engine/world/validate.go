package world

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// MaxShortIDLength bounds every short identifier (rooms, door targets,
// weapons, enemies, player location). It counts bytes, not runes.
const MaxShortIDLength = 5

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their label so error text reads like the data file.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	err := v.RegisterValidation("shortid", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxShortIDLength
	})
	if err != nil {
		panic(err)
	}
	return v
}

// checkFields validates a constructor's field spec and reports the first
// violation as ErrInvalidArgument.
func checkFields(spec any) error {
	err := validate.Struct(spec)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s NOT SPECIFIED", ErrInvalidArgument, fe.Field())
	case "shortid":
		return fmt.Errorf("%w: %s TOO LONG", ErrInvalidArgument, fe.Field())
	case "gt":
		return fmt.Errorf("%w: %s EQUALS ZERO", ErrInvalidArgument, fe.Field())
	default:
		return fmt.Errorf("%w: %s INVALID", ErrInvalidArgument, fe.Field())
	}
}
