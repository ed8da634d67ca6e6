package impl

import (
	"strings"

	domainerrors "wander/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// SearchPlace is a parsed "city, state" search query
type SearchPlace struct {
	City  string `validate:"required,max=100"`
	State string `validate:"required,max=100"`
}

func (p SearchPlace) String() string {
	return p.City + ", " + p.State
}

// ParseSearchQuery splits a query into exactly two non-empty comma-separated parts
func ParseSearchQuery(validate *validator.Validate, query string) (SearchPlace, error) {
	parts := strings.Split(query, ",")
	if len(parts) != 2 {
		return SearchPlace{}, domainerrors.ErrInvalidQuery.WithDetails("expected \"city, state\"")
	}

	place := SearchPlace{
		City:  strings.TrimSpace(parts[0]),
		State: strings.TrimSpace(parts[1]),
	}
	if err := validate.Struct(place); err != nil {
		return SearchPlace{}, domainerrors.ErrInvalidQuery.WithDetails(err.Error())
	}

	return place, nil
}
