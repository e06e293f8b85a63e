package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the node in outbound peer requests.
const UserAgent = "go-privacy-node"

// HTTPClient embeds *resty.Client so callers configure timeouts, retries and
// the transport directly on it.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetBody(push).Post(nodeURL + "/push")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client carrying [UserAgent].
func NewHTTPClient() *HTTPClient {
	client := resty.New().SetHeader("User-Agent", UserAgent)
	return &HTTPClient{Client: client}
}
