package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/yurin-kami/packchann-client/internal/common"
)

// APIError is a non-2xx response with the server's failure text.
// errors.Is matches common.ErrUnauthorized for 401 and common.ErrNotFound
// for 404 through Unwrap.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server responded %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	}
	return nil
}

// ErrorMessage extracts the server-supplied message from err for display,
// falling back to the given text for transport failures or empty bodies.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
