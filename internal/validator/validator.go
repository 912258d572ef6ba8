package validator

import (
	"github.com/aayushkuntal/piepay-server/internal/model"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance with domain rules registered.
var Validate *validator.Validate

func init() {
	Validate = validator.New()

	// "instrument": value names one of the recognised payment instruments.
	_ = Validate.RegisterValidation("instrument", func(fl validator.FieldLevel) bool {
		return model.IsKnownInstrument(fl.Field().String())
	})
}
