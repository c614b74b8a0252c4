// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"net/http"

	validatorLib "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	validate *validatorLib.Validate
}

// New builds the echo.Validator used on every bound request body.
func New() echo.Validator {
	return &requestValidator{validate: validatorLib.New()}
}

// Validate implements echo.Validator.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
