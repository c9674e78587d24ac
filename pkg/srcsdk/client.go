// Package srcsdk is an HTTP client for the hosted SRC Passkeys SDK. It
// covers the two calls the wrapper needs: a load round-trip that confirms
// the SDK endpoint is reachable, and the authenticate call itself.
package srcsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/corepay/srcpasskeys/pkg/options"
	"github.com/corepay/srcpasskeys/pkg/srctypes"
)

const (
	sandboxBaseURL    = "https://sandbox.src.mastercard.com"
	productionBaseURL = "https://src.mastercard.com"

	readyPath        = "/sdk/v1/ready"
	authenticatePath = "/sdk/v1/authenticate"
)

type Client struct {
	baseURL string
	hc      *http.Client
	logger  *slog.Logger
}

// New builds an SDK client. The endpoint is a two-way branch on the
// environment: production gets the production SDK, everything else the
// sandbox one. options.WithSDKBaseURL overrides both.
func New(opts ...options.Option) *Client {
	oo := options.NewOptions(opts...)

	base := oo.SDKBaseURL
	if base == "" {
		if oo.Environment == options.EnvironmentProduction {
			base = productionBaseURL
		} else {
			base = sandboxBaseURL
		}
	}

	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		hc:      oo.HTTPClient,
		logger:  oo.Logger,
	}
}

// BaseURL reports the resolved SDK base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Load performs one round-trip against the SDK's ready endpoint. It is the
// HTTP counterpart of waiting for the hosted SDK script to signal load
// completion; any failure is reported as a LoadError.
func (c *Client) Load(ctx context.Context) error {
	target := c.baseURL + readyPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &LoadError{URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return &LoadError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &LoadError{URL: target, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	c.logger.Debug("SRC SDK loaded", "url", target)
	return nil
}

// Authenticate submits the translated payload to the SDK.
func (c *Client) Authenticate(ctx context.Context, payload *srctypes.AuthenticationPayload) (*srctypes.AuthenticationResponse, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("srcsdk: marshal authenticate request: %w", err)
	}
	c.logger.Debug("authenticate request",
		"srcCorrelationId", payload.SRCCorrelationID,
		"traceId", payload.TraceID,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+authenticatePath, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("srcsdk: build authenticate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		var netErr net.Error
		if (errors.As(err, &netErr) && netErr.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("srcsdk: request timeout: %w", err)
		}
		return nil, fmt.Errorf("srcsdk: network request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("srcsdk: read authenticate response: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		sdkErr := &SDKError{Status: resp.StatusCode}
		if err := json.Unmarshal(body, sdkErr); err != nil || (sdkErr.Reason == "" && sdkErr.Message == "") {
			sdkErr.Message = strings.TrimSpace(string(body))
		}
		return nil, sdkErr
	}

	var out *srctypes.AuthenticationResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("srcsdk: decode authenticate response: %w", err)
	}
	if out == nil {
		out = &srctypes.AuthenticationResponse{}
	}
	c.logger.Debug("authenticate response",
		"status", out.Status,
		"srcCorrelationId", out.SRCCorrelationID,
	)

	return out, nil
}
