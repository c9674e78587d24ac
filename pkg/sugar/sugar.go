// Package sugar offers one-call conveniences on top of pkg/passkeys for
// callers that do not want to keep a wrapper instance around.
package sugar

import (
	"context"

	"github.com/corepay/srcpasskeys/pkg/options"
	"github.com/corepay/srcpasskeys/pkg/passkeys"
)

// ExecuteAuthenticate builds a wrapper from the given options, initializes
// it and runs the full authentication flow. Useful for one-shot calls;
// long-lived callers should construct a passkeys.Wrapper once and reuse it,
// which also reuses the loaded SDK handle.
func ExecuteAuthenticate(ctx context.Context, params passkeys.AuthRequestParams, opts ...options.Option) (*passkeys.AuthenticationResult, error) {
	w, err := passkeys.New(opts...)
	if err != nil {
		return nil, err
	}

	if err := w.Initialize(ctx); err != nil {
		return nil, err
	}

	return w.ExecuteAuthenticate(ctx, params)
}
