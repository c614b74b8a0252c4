// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"

	"gorm.io/gorm"
)

// applyListQuery narrows tx by the query's filter and pagination. Filter keys
// are translated through the columns whitelist; unknown keys are dropped so a
// client can never address an arbitrary column.
func applyListQuery(tx *gorm.DB, query repository.ListQuery, columns map[string]string, order string) *gorm.DB {
	for key, value := range query.Filter {
		column, ok := columns[key]
		if !ok {
			continue
		}
		tx = tx.Where(column+" = ?", value)
	}

	return tx.Order(order).Offset(query.Offset()).Limit(query.PerPage)
}
