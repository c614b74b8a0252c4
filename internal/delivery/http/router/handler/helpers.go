// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathID parses a UUID path parameter. A malformed id can never name an
// existing resource, so it resolves to NotFound rather than a binding error.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound.WrapMessage("invalid " + name)
	}

	return id, nil
}

// listQueryFromContext reads page/perPage from the query string and treats
// every other query parameter as an exact-match filter.
func listQueryFromContext(c echo.Context) repository.ListQuery {
	query := repository.ListQuery{Filter: map[string]any{}}

	for key, values := range c.QueryParams() {
		if len(values) == 0 {
			continue
		}
		value := values[0]
		switch key {
		case "page":
			query.Page, _ = strconv.Atoi(value)
		case "perPage":
			query.PerPage, _ = strconv.Atoi(value)
		default:
			query.Filter[key] = value
		}
	}

	return query
}

// filterRequest is the body of the POST .../filter routes.
type filterRequest struct {
	Filter  map[string]any `json:"filter"`
	Page    int            `json:"page"`
	PerPage int            `json:"perPage"`
}

func (r filterRequest) toListQuery() repository.ListQuery {
	return repository.ListQuery{
		Filter:  r.Filter,
		Page:    r.Page,
		PerPage: r.PerPage,
	}
}
