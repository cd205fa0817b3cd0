package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Journal type codes are short uppercase identifiers like "GJ" or "AP".
var journalTypeRe = regexp.MustCompile(`^[A-Z][A-Z0-9]{0,9}$`)

// RegisterCustomValidations adds the binding validations that the built-in
// tags cannot express. Call once at startup, before routes are served.
func RegisterCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("journaltype", func(fl validator.FieldLevel) bool {
		return journalTypeRe.MatchString(fl.Field().String())
	})
}
