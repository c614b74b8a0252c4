// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

// ListQuery carries the uniform paginated-list parameters shared by all
// resources: exact-match filters plus skip/limit pagination. Nil or empty
// filter values are stripped before the query runs.
type ListQuery struct {
	Filter  map[string]any
	Page    int
	PerPage int
}

// Normalize applies the shared defaults and drops empty filter values.
func (q ListQuery) Normalize(defaultPerPage int) ListQuery {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = defaultPerPage
	}

	cleaned := make(map[string]any, len(q.Filter))
	for key, value := range q.Filter {
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		cleaned[key] = value
	}
	q.Filter = cleaned

	return q
}

// Offset returns the number of rows to skip for the requested page.
func (q ListQuery) Offset() int {
	return q.PerPage * (q.Page - 1)
}
