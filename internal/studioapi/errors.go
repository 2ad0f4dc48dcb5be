package studioapi

import "fmt"

// APIError is returned when the studio API responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "studio api error"
	}
	return fmt.Sprintf("studio api error: %s %s: %s", e.Status, e.Endpoint, e.Body)
}
