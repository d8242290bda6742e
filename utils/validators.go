package utils

import (
	"math"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// IsHalfStepRating reports whether r is a valid rating: a multiple of 0.5
// in [0,5].
func IsHalfStepRating(r float64) bool {
	if r < 0 || r > 5 {
		return false
	}
	doubled := r * 2
	return doubled == math.Trunc(doubled)
}

func halfStepValidator(fl validator.FieldLevel) bool {
	return IsHalfStepRating(fl.Field().Float())
}

// RegisterValidators attaches custom validators to gin's binding engine.
// Called once from main.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("halfstep", halfStepValidator)
	}
}
