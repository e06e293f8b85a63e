package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch {
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrPeerFailed, resp.StatusCode(), body)
	case resp.StatusCode() >= http.StatusBadRequest:
		return fmt.Errorf("%w: http %d: %s", ErrPeerRejected, resp.StatusCode(), body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrInvalidPeerResponse, resp.StatusCode(), body)
	}
}

func mapTransportError(err error) error {
	return fmt.Errorf("%w: %w", ErrPeerUnreachable, err)
}

// retryable reports whether another attempt may succeed. Rejections are
// final; transport failures and server errors are retried.
func retryable(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp.StatusCode() >= http.StatusInternalServerError ||
		resp.StatusCode() == http.StatusTooManyRequests
}
