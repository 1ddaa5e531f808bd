package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const clientUserAgent = "go-auth-keeper-client"

// HTTPClient is a resty client preset for the auth API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. Responses never populate
// a cookie jar, so tokens only travel the way the caller sends them.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetCookieJar(nil).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", clientUserAgent)

	return &HTTPClient{Client: client}
}

// AuthorizedR returns a new request that carries token in the
// "Authorization: Bearer" header. An empty token yields a plain request.
func (c *HTTPClient) AuthorizedR(token string) *resty.Request {
	req := c.R()
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}
