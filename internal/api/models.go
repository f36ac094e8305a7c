package api

import (
	"math"
	"net/url"

	"github.com/phrazzld/todo-api/internal/domain"
)

// Common request structures

// TodoRequestBody defines the payload for the create and update endpoints.
type TodoRequestBody struct {
	Name      string `json:"name"      validate:"max=255"`
	Completed *bool  `json:"completed" validate:"required"`
}

// ListTodosQuery defines the query parameters of the list endpoint.
// Both fields are required; Skip is a page number, not a row offset.
type ListTodosQuery struct {
	Skip  *int `schema:"skip,required"`
	Limit *int `schema:"limit,required"`
}

// Validate checks that both values are non-negative and fit in an int32.
func (q ListTodosQuery) Validate() error {
	if err := checkPagingParam("skip", q.Skip); err != nil {
		return err
	}
	return checkPagingParam("limit", q.Limit)
}

// requirePagingValues rejects a list query whose skip or limit key is absent
// or carries an empty value. The schema decoder only checks key presence and
// would otherwise decode "skip=" as zero.
func requirePagingValues(values url.Values) error {
	for _, name := range []string{"skip", "limit"} {
		if values.Get(name) == "" {
			return domain.NewValidationError(name, "is required", nil)
		}
	}
	return nil
}

func checkPagingParam(name string, v *int) error {
	switch {
	case v == nil:
		return domain.NewValidationError(name, "is required", nil)
	case *v < 0:
		return domain.NewValidationError(name, "must not be negative", nil)
	case *v > math.MaxInt32:
		return domain.NewValidationError(name, "is too large", nil)
	}
	return nil
}
