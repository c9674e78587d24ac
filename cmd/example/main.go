package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/corepay/srcpasskeys/pkg/options"
	"github.com/corepay/srcpasskeys/pkg/passkeys"
)

func main() {
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelDebug)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	}))

	// Expects cmd/corestub to be running locally.
	w, err := passkeys.New(
		options.WithEnvironment(options.EnvironmentLocal),
		options.WithSDKBaseURL("http://localhost:9090"),
		options.WithLocale("en_US"),
		options.WithLogger(logger),
	)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	if err := w.Initialize(ctx); err != nil {
		panic(err)
	}

	result, err := w.ExecuteAuthenticate(ctx, passkeys.AuthRequestParams{
		ManagerCode:  "azul",
		MerchantCode: "m-1",
		TokenCode:    "t-1",
		Method:       passkeys.AuthMethodPasskey,
		Reason:       passkeys.AuthReasonPayment,
		Amount:       &passkeys.Amount{Value: 1250.50, Currency: "USD"},
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("Status: %s\n", result.Status)
	fmt.Printf("Correlation ID: %s\n", result.SRCCorrelationID)
	if result.Assertion != nil {
		fmt.Printf("Passkey sign count: %d (UV=%t)\n",
			result.Assertion.SignCount,
			result.Assertion.Flags.UserVerified(),
		)
	}
	for k, v := range result.IDTokenClaims {
		fmt.Printf("Claim %s: %v\n", k, v)
	}
}
