package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of an upstream error body ends up in errors and logs.
const maxErrorBody = 512

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}

	var kind error
	switch {
	case code == http.StatusBadRequest:
		kind = ErrBadRequest
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		kind = ErrUnauthorized
	case code == http.StatusNotFound:
		kind = ErrNotFound
	case code == http.StatusTooManyRequests:
		kind = ErrRateLimited
	case code >= http.StatusInternalServerError:
		kind = ErrUpstreamUnavailable
	default:
		return fmt.Errorf("%w (status %d): %s", ErrUpstreamStatus, code, body)
	}

	return fmt.Errorf("%w: %w (status %d): %s", ErrUpstreamStatus, kind, code, body)
}
