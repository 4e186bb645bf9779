package utils

import (
	"time"

	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every request of the sync client.
const UserAgent = "go-pass-sync"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent resty client with JSON defaults and
// the given per-request timeout. A zero timeout leaves requests unbounded
// except by their context.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent).
		SetHeader(models.ProtocolHeader, models.ProtocolVersion)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
