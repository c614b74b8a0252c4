package postgres

import (
	"strings"

	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err is a duplicate-key error.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// duplicateField guesses which logical field a unique violation refers to by
// inspecting the constraint name in the driver message. Unknown constraints
// fall back to "name", the field every resource keeps unique.
func duplicateField(err error) string {
	msg := strings.ToLower(err.Error())
	for _, field := range []string{"username", "external_id", "machine_id", "alias"} {
		if strings.Contains(msg, field) {
			return field
		}
	}

	return "name"
}

// translateWriteError maps store-level constraint failures onto the domain
// error taxonomy. Anything unrecognized surfaces as a database error.
func translateWriteError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if isUniqueConstraintViolation(err) {
		field := duplicateField(err)

		return domainerrors.NewDuplicateNameError(field, resource+" "+field+" already exists")
	}

	return domainerrors.NewDatabaseExecuteError(err, "write "+resource)
}
