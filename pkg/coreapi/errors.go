package coreapi

import (
	"errors"
	"strconv"
)

var (
	ErrMissingIdentifier = errors.New("coreapi: manager, merchant and token codes are all required")

	// ErrProductionBaseURLRequired is returned when a production client is
	// constructed without an explicit Core base URL. There is no default
	// production endpoint; shipping one as a copy of the sandbox URL has
	// caused misrouted lookups before.
	ErrProductionBaseURLRequired = errors.New("coreapi: production environment requires an explicit Core base URL")
)

// StatusError reports a non-2xx response from the brand-info endpoint.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	msg := "coreapi: brand-info request failed (" + strconv.Itoa(e.StatusCode) + " " + e.Status + ")"
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}
