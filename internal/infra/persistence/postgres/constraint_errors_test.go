package postgres

import (
	"fmt"
	"testing"

	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateWriteError_DuplicateFieldFromConstraintName(t *testing.T) {
	tests := []struct {
		constraint string
		wantField  string
	}{
		{constraint: "uni_machines_alias", wantField: "alias"},
		{constraint: "uni_machines_machine_id", wantField: "machine_id"},
		{constraint: "uni_users_username", wantField: "username"},
		{constraint: "uni_users_external_id", wantField: "external_id"},
		{constraint: "uni_clients_name", wantField: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			err := fmt.Errorf("%w: duplicate key value violates unique constraint %q",
				gorm.ErrDuplicatedKey, tt.constraint)

			translated := translateWriteError(err, "machine")

			var dup *domainerrors.DuplicateNameError
			require.ErrorAs(t, translated, &dup)
			assert.Equal(t, tt.wantField, dup.Field())
			assert.Equal(t, 409, dup.HTTPCode())
		})
	}
}

func TestTranslateWriteError_OtherErrorsBecomeDatabaseErrors(t *testing.T) {
	translated := translateWriteError(gorm.ErrInvalidTransaction, "machine")

	var appErr domainerrors.AppError
	require.ErrorAs(t, translated, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestTranslateWriteError_NilPassesThrough(t *testing.T) {
	assert.NoError(t, translateWriteError(nil, "machine"))
}
