// Package impl contains the application-specific business rules implementations.
package impl

import (
	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"
)

// requireString validates a mandatory create-time field.
func requireString(value *string, field string) (string, error) {
	if value == nil || *value == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails(field + " is required")
	}

	return *value, nil
}

// stringOr returns the provided value or a fallback.
func stringOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}

	return *value
}
