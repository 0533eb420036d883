package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// messages overrides the generic text for specific field/tag pairs.
var messages = map[string]string{
	"categoryName.notblank": "Category name is required",
	"categoryName.trimmin":  "Category name must be at least 2 characters",
	"categoryName.trimmax":  "Category name must not exceed 100 characters",
	"sizeName.notblank":     "Size name is required",
	"sizeName.trimmax":      "Size name must not exceed 50 characters",
	"description.max":       "Description must not exceed 500 characters",
	"value.max":             "Value must not exceed 20 characters",
	"unit.size_unit":        "Unit must be one of weight, volume, size, length, other",
	"displayOrder.display_order": fmt.Sprintf("Display order must be a number from %d to %d",
		MinDisplayOrder, MaxDisplayOrder),
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "notblank", "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max", "trimmax":
		return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
	case "min", "trimmin":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
