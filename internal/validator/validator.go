// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"spendsense/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("calendar_date", validateCalendarDate)
	}
}

// validateCalendarDate accepts YYYY-MM-DD strings, the format the score
// history endpoints use for date-range query parameters.
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.ScoreDateLayout, fl.Field().String())
	return err == nil
}
