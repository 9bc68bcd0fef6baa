package models

import "github.com/go-playground/validator/v10"

// NewValidator returns a validator aware of the planner's custom tags.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("schoolday", func(fl validator.FieldLevel) bool {
		return DayOfWeek(fl.Field().String()).Valid()
	})
	return v
}
