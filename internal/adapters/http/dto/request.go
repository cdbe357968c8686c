package dto

import (
	"errors"
	"maps"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/scanconsole/internal/domain"
)

// Query parameter names.
const (
	FilterParam = "filter"
	AsyncParam  = "async"
)

// LoadQuery holds the query parameters shared by the entity endpoints.
type LoadQuery struct {
	// Filter is nil when the request has no filter parameter, which selects
	// the default collection. "?filter=" selects the explicit empty filter.
	Filter *domain.Filter
	// Async requests a background load answered with 202 Accepted.
	Async bool
}

// ParseLoadQuery parses the filter and async parameters. Malformed values are
// reported together as a *domain.ValidationError.
func ParseLoadQuery(values url.Values) (LoadQuery, error) {
	var q LoadQuery
	fields := make(map[string]string)

	if values.Has(FilterParam) {
		f, err := domain.ParseFilter(values.Get(FilterParam))
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			maps.Copy(fields, verr.Fields)
		case err != nil:
			fields[FilterParam] = err.Error()
		default:
			q.Filter = &f
		}
	}

	if raw := values.Get(AsyncParam); raw != "" {
		async, err := strconv.ParseBool(raw)
		if err != nil {
			fields[AsyncParam] = "must be a boolean"
		}
		q.Async = async
	}

	if len(fields) > 0 {
		return LoadQuery{}, &domain.ValidationError{Fields: fields}
	}
	return q, nil
}

// ParseEntityType validates the {type} path parameter.
func ParseEntityType(raw string) (domain.EntityType, error) {
	t := domain.EntityType(raw)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}
