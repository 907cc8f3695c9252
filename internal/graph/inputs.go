package graph

import (
	"fmt"
	"strings"

	"github.com/causeconnect-dev/causeconnect/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type signUpInput struct {
	Email    string      `validate:"required,email"`
	FullName string      `validate:"required"`
	Password string      `validate:"required,min=8"`
	Role     models.Role `validate:"omitempty,oneof=user organizer"`
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type donationInput struct {
	Amount float64 `validate:"required,gt=0"`
}

type eventInput struct {
	Title            string `validate:"required"`
	VolunteersNeeded int    `validate:"gte=0"`
}

// validateInput runs struct validation and converts the first failure into a
// readable BAD_USER_INPUT error.
func validateInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return badInput("Invalid input")
	}

	fieldError := validationErrors[0]
	field := strings.ToLower(fieldError.Field())

	switch fieldError.Tag() {
	case "required":
		return badInput(fmt.Sprintf("Field %s is required", field))
	case "email":
		return badInput("Invalid email address")
	case "min":
		return badInput(fmt.Sprintf("Field %s must be at least %s characters", field, fieldError.Param()))
	case "gt":
		return badInput(fmt.Sprintf("Field %s must be greater than %s", field, fieldError.Param()))
	case "gte":
		return badInput(fmt.Sprintf("Field %s must not be negative", field))
	case "oneof":
		return badInput(fmt.Sprintf("Field %s must be one of: %s", field, fieldError.Param()))
	default:
		return badInput(fmt.Sprintf("Field %s is invalid", field))
	}
}
