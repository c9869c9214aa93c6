package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"tiew/internal/config"
	"tiew/pkg/utils"
)

// HTTPGetter issues an authenticated GET against a RapidAPI host and decodes the JSON body into out.
type HTTPGetter interface {
	Get(ctx context.Context, host, path string, params url.Values, out any) error
}

type RapidAPIClient struct {
	HTTP   *http.Client
	APIKey string
	Scheme string
	log    *zap.Logger
}

func NewRapidAPIClient(cfg *config.Config, log *zap.Logger) *RapidAPIClient {
	if cfg.RapidAPI.Key == "" {
		log.Warn("RAPIDAPI_KEY is empty, upstream calls will be rejected")
	}
	return &RapidAPIClient{
		HTTP:   &http.Client{Timeout: cfg.RapidAPI.Timeout},
		APIKey: cfg.RapidAPI.Key,
		Scheme: "https",
		log:    log,
	}
}

func (c *RapidAPIClient) Get(ctx context.Context, host, path string, params url.Values, out any) error {
	u := url.URL{
		Scheme:   c.Scheme,
		Host:     host,
		Path:     path,
		RawQuery: params.Encode(),
	}

	c.log.Debug("upstream request", zap.String("url", u.String()), zap.Any("params", params))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return &utils.NetworkError{Err: err}
	}
	req.Header.Set("X-RapidAPI-Host", hostOnly(host))
	req.Header.Set("X-RapidAPI-Key", c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &utils.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &utils.RequestError{
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &utils.NetworkError{Err: fmt.Errorf("read body: %w", err)}
	}

	c.log.Debug("upstream response", zap.String("url", u.String()), zap.ByteString("payload", body))

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &utils.NetworkError{Err: fmt.Errorf("decode %s: %w", path, err)}
	}
	return nil
}

// hostOnly strips a port so test servers on 127.0.0.1:xxxx still send a plain host header.
func hostOnly(host string) string {
	if i := strings.LastIndex(host, ":"); i > 0 {
		return host[:i]
	}
	return host
}
