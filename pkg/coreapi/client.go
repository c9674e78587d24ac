package coreapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/corepay/srcpasskeys/pkg/options"
)

const (
	localBaseURL   = "http://localhost:9090"
	sandboxBaseURL = "https://sandbox.api.corepay.net"

	brandInfoPathFormat = "/tr-tsp-api-core/v1/private/manager/%s/merchant/%s/token/%s/brand-info"
)

// Client performs brand-info lookups against the Core merchant/token API.
type Client struct {
	baseURL string
	hc      *http.Client
	logger  *slog.Logger
}

// New builds a Core API client for the configured environment. local and
// development point at the fixed local endpoint, sandbox (and anything
// unrecognized) at the hosted sandbox. production has no default endpoint
// and must be configured with options.WithCoreBaseURL.
func New(opts ...options.Option) (*Client, error) {
	oo := options.NewOptions(opts...)

	base := oo.CoreBaseURL
	if base == "" {
		switch oo.Environment {
		case options.EnvironmentLocal, options.EnvironmentDevelopment:
			base = localBaseURL
		case options.EnvironmentProduction:
			return nil, ErrProductionBaseURLRequired
		default:
			base = sandboxBaseURL
		}
	}

	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		hc:      oo.HTTPClient,
		logger:  oo.Logger,
	}, nil
}

// BaseURL reports the resolved Core API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchTokenBrandInfo retrieves brand metadata for a manager/merchant/token
// triple. The response body is decoded as-is; nothing is cached.
func (c *Client) FetchTokenBrandInfo(ctx context.Context, params BrandInfoParams) (*TokenBrandInfo, error) {
	if params.ManagerCode == "" || params.MerchantCode == "" || params.TokenCode == "" {
		return nil, ErrMissingIdentifier
	}

	target := c.baseURL + fmt.Sprintf(
		brandInfoPathFormat,
		url.PathEscape(params.ManagerCode),
		url.PathEscape(params.MerchantCode),
		url.PathEscape(params.TokenCode),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("coreapi: build brand-info request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching token brand info",
		"manager", params.ManagerCode,
		"merchant", params.MerchantCode,
		"token", params.TokenCode,
	)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coreapi: brand-info request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("coreapi: read brand-info response: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       strings.TrimSpace(string(body)),
		}
	}

	info := &TokenBrandInfo{}
	if err := json.Unmarshal(body, info); err != nil {
		return nil, fmt.Errorf("coreapi: decode brand-info response: %w", err)
	}
	info.Raw = body

	return info, nil
}
