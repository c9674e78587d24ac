package options

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/corepay/srcpasskeys/pkg/srctypes"
)

// Environment selects which Core API and SRC SDK endpoints the wrapper
// talks to. Unrecognized values behave like EnvironmentSandbox.
type Environment string

const (
	EnvironmentLocal       Environment = "local"
	EnvironmentDevelopment Environment = "development"
	EnvironmentSandbox     Environment = "sandbox"
	EnvironmentProduction  Environment = "production"
)

// Authenticator is the surface of the SRC SDK the wrapper invokes.
// A pre-built handle supplied via WithSDK is adopted verbatim; no further
// construction or configuration call is made on it.
type Authenticator interface {
	Authenticate(ctx context.Context, payload *srctypes.AuthenticationPayload) (*srctypes.AuthenticationResponse, error)
}

type Options struct {
	Logger      *slog.Logger
	Environment Environment
	Locale      string
	HTTPClient  *http.Client
	CoreBaseURL string
	SDKBaseURL  string
	SDK         Authenticator
}

type Option func(*Options)

func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func WithEnvironment(env Environment) Option {
	return func(opts *Options) {
		opts.Environment = env
	}
}

// WithLocale sets the locale forwarded as dpaLocale, e.g. "en_US" or "es_CL".
func WithLocale(locale string) Option {
	return func(opts *Options) {
		opts.Locale = locale
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(opts *Options) {
		opts.HTTPClient = hc
	}
}

// WithCoreBaseURL overrides the environment-derived Core API base URL.
// Required for EnvironmentProduction, which has no default endpoint.
func WithCoreBaseURL(baseURL string) Option {
	return func(opts *Options) {
		opts.CoreBaseURL = baseURL
	}
}

// WithSDKBaseURL overrides the environment-derived SRC SDK base URL.
func WithSDKBaseURL(baseURL string) Option {
	return func(opts *Options) {
		opts.SDKBaseURL = baseURL
	}
}

// WithSDK adopts an already-constructed SDK handle instead of loading one.
func WithSDK(sdk Authenticator) Option {
	return func(opts *Options) {
		opts.SDK = sdk
	}
}

func NewOptions(opts ...Option) *Options {
	oo := &Options{
		Logger:      slog.Default(),
		Environment: EnvironmentSandbox,
		Locale:      "en_US",
		HTTPClient:  http.DefaultClient,
	}

	for _, opt := range opts {
		opt(oo)
	}

	return oo
}
