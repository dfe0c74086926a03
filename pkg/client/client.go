package client

import (
	"time"

	"github.com/Jaymi-01/framez/pkg/config"
	"github.com/Jaymi-01/framez/pkg/logger"
	"github.com/go-resty/resty/v2"
	json "github.com/json-iterator/go"
)

const userAgent = "Framez-CLI/0.1.0"

var httpClient *resty.Client

// New builds a resty client for the Framez API at baseURL. JSON goes
// through json-iterator.
func New(baseURL string, timeout time.Duration) *resty.Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP request", "method", req.Method, "url", req.URL)
		return nil
	})
	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP response", "status", resp.StatusCode(), "elapsed", resp.Time())
		return nil
	})
	return c
}

// Init builds the shared client from config
func Init() {
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second
	httpClient = New(config.GetString("api.base_url"), timeout)
}

// GetClient returns the shared client, building it on first use
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

// SetAuthToken attaches the bearer token to every request
func SetAuthToken(token string) {
	GetClient().SetAuthToken(token)
}

// ClearAuthToken drops the bearer token
func ClearAuthToken() {
	GetClient().SetAuthToken("")
}
