package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &HTTPError{Status: resp.StatusCode(), Message: errorMessage(resp.Body())}
}

// errorMessage prefers the {"error": "..."} field and falls back to the raw
// body text.
func errorMessage(body []byte) string {
	var payload models.ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(body))
}

func unreachable(op string, err error) error {
	return fmt.Errorf("%w: %s request: %w", ErrUnreachable, op, err)
}
