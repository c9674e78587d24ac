// Package passkeys bridges the Core merchant/token API and the SRC Passkeys
// SDK: it loads the SDK for the configured environment, fetches token brand
// metadata, translates it into the SDK's authentication payload, invokes the
// SDK and maps the outcome back into a Core-friendly result.
package passkeys

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samber/mo"

	"github.com/corepay/srcpasskeys/pkg/coreapi"
	"github.com/corepay/srcpasskeys/pkg/options"
	"github.com/corepay/srcpasskeys/pkg/srcsdk"
)

// Wrapper is an explicit instance holding what the browser original kept in
// process-wide globals: the environment, the ready flag and the SDK handle.
// It has two states, uninitialized and ready, with a single one-way
// transition; a failed initialization leaves it uninitialized so the next
// call retries.
type Wrapper struct {
	logger    *slog.Logger
	locale    string
	core      *coreapi.Client
	sdkClient *srcsdk.Client
	presetSDK options.Authenticator

	mu      sync.Mutex
	ready   bool
	loading bool
	sdk     options.Authenticator
	waiters []chan mo.Either[options.Authenticator, error]
}

// New builds an uninitialized wrapper. Construction fails only on
// configuration errors, such as a production environment without an
// explicit Core base URL.
func New(opts ...options.Option) (*Wrapper, error) {
	oo := options.NewOptions(opts...)

	core, err := coreapi.New(opts...)
	if err != nil {
		return nil, newError(CodeInvalidInput, err.Error(), err)
	}

	return &Wrapper{
		logger:    oo.Logger,
		locale:    oo.Locale,
		core:      core,
		sdkClient: srcsdk.New(opts...),
		presetSDK: oo.SDK,
	}, nil
}

// Initialize obtains the SDK handle and flips the wrapper to ready. It is
// idempotent: once ready, duplicate calls log a warning and return nil.
// Concurrent callers share a single in-flight load; the first caller
// performs it and the rest wait for the same outcome.
func (w *Wrapper) Initialize(ctx context.Context) error {
	w.mu.Lock()
	if w.ready {
		w.mu.Unlock()
		w.logger.Warn("wrapper already initialized, ignoring duplicate Initialize call")
		return nil
	}
	if w.loading {
		ch := make(chan mo.Either[options.Authenticator, error], 1)
		w.waiters = append(w.waiters, ch)
		w.mu.Unlock()

		res := <-ch
		if err, ok := res.Right(); ok {
			return err
		}
		return nil
	}
	w.loading = true
	w.mu.Unlock()

	sdk, err := w.loadSDK(ctx)

	w.mu.Lock()
	w.loading = false
	waiters := w.waiters
	w.waiters = nil
	if err == nil {
		w.sdk = sdk
		w.ready = true
	}
	w.mu.Unlock()

	for _, ch := range waiters {
		if err != nil {
			ch <- mo.Right[options.Authenticator, error](err)
			continue
		}
		ch <- mo.Left[options.Authenticator, error](sdk)
	}

	return err
}

// loadSDK adopts a pre-built handle verbatim when one was supplied,
// otherwise performs the environment-keyed load round-trip.
func (w *Wrapper) loadSDK(ctx context.Context) (options.Authenticator, error) {
	if w.presetSDK != nil {
		w.logger.Debug("adopting pre-built SDK handle")
		return w.presetSDK, nil
	}

	if err := w.sdkClient.Load(ctx); err != nil {
		return nil, toWrapperError(err)
	}
	return w.sdkClient, nil
}

// IsReady reports whether initialization has completed.
func (w *Wrapper) IsReady() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ready
}

// SDK returns the cached SDK handle, or a NotInitialized error when called
// before a successful Initialize.
func (w *Wrapper) SDK() (options.Authenticator, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.ready || w.sdk == nil {
		return nil, notInitializedError()
	}
	return w.sdk, nil
}

// FetchTokenBrandInfo looks up brand metadata for a manager/merchant/token
// triple. Missing identifiers fail before any network access.
func (w *Wrapper) FetchTokenBrandInfo(ctx context.Context, params coreapi.BrandInfoParams) (*coreapi.TokenBrandInfo, error) {
	info, err := w.core.FetchTokenBrandInfo(ctx, params)
	if err != nil {
		return nil, toCoreAPIError(err)
	}
	return info, nil
}

// Authenticate translates already-merged data and invokes the SDK. It
// requires a ready wrapper and never triggers initialization itself.
func (w *Wrapper) Authenticate(ctx context.Context, data AuthData) (*AuthenticationResult, error) {
	sdk, err := w.SDK()
	if err != nil {
		return nil, err
	}

	payload, err := toAuthenticationPayload(data)
	if err != nil {
		return nil, newError(CodeInvalidInput, err.Error(), err)
	}

	resp, err := sdk.Authenticate(ctx, payload)
	if err != nil {
		return nil, toWrapperError(err)
	}

	return toAuthResult(resp, w.logger), nil
}

// ExecuteAuthenticate is the end-to-end flow: initialize if needed, fetch
// brand info, merge the caller's transaction parameters, translate and
// invoke. Any failure propagates unchanged; if initialization fails the
// Core API is never called.
func (w *Wrapper) ExecuteAuthenticate(ctx context.Context, params AuthRequestParams) (*AuthenticationResult, error) {
	if !w.IsReady() {
		if err := w.Initialize(ctx); err != nil {
			return nil, err
		}
	}

	info, err := w.FetchTokenBrandInfo(ctx, coreapi.BrandInfoParams{
		ManagerCode:  params.ManagerCode,
		MerchantCode: params.MerchantCode,
		TokenCode:    params.TokenCode,
	})
	if err != nil {
		return nil, err
	}

	return w.Authenticate(ctx, mergeAuthData(info, params, w.locale))
}
