package handlers

import (
	"github.com/SscSPs/pocket_finance_app/internal/utils/dates"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidators installs the dateonly rule used by request DTOs.
// Calendar dates cross the API boundary as YYYY-MM-DD strings.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
			_, err := dates.Parse(fl.Field().String())
			return err == nil
		})
	}
}
