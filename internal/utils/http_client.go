package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient bound to baseURL.
//
// A zero timeout keeps resty's default, i.e. no client side deadline;
// callers still bound requests with their context.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://generativelanguage.googleapis.com", 0)
//	resp, err := client.R().SetContext(ctx).Get("/v1beta/models")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
