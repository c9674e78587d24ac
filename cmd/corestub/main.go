// corestub serves canned Core API and SRC SDK responses on the fixed local
// endpoint, so a wrapper configured with environment=local works without
// access to the hosted sandbox.
package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/corepay/srcpasskeys/pkg/coreapi"
	"github.com/corepay/srcpasskeys/pkg/srctypes"
)

const addr = "localhost:9090"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/tr-tsp-api-core/v1/private/manager/{managerCode}/merchant/{merchantCode}/token/{tokenCode}/brand-info", brandInfo)
	r.Get("/sdk/v1/ready", ready)
	r.Post("/sdk/v1/authenticate", authenticate)

	logger.Info("corestub listening", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Error("corestub stopped", "err", err)
		os.Exit(1)
	}
}

func brandInfo(w http.ResponseWriter, r *http.Request) {
	info := coreapi.TokenBrandInfo{
		ServiceID:            "svc-demo",
		SRCClientID:          "client-demo",
		SRCDigitalCardID:     "dcard-" + chi.URLParam(r, "tokenCode"),
		AcquirerMerchantID:   chi.URLParam(r, "merchantCode"),
		AcquirerBIN:          "545454",
		DPAName:              "Demo Merchant",
		DPAURI:               "https://merchant.example",
		MerchantCategoryCode: "5411",
		MerchantCountryCode:  "US",
		BillingAddress: &coreapi.BillingAddress{
			Line1:       "1 Demo St",
			City:        "Springfield",
			State:       "IL",
			Zip:         "62701",
			CountryCode: "US",
		},
	}
	writeJSON(w, http.StatusOK, info)
}

func ready(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func authenticate(w http.ResponseWriter, r *http.Request) {
	var payload srctypes.AuthenticationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"reason":  "INVALID_REQUEST",
			"message": "malformed authentication payload",
		})
		return
	}

	writeJSON(w, http.StatusOK, srctypes.AuthenticationResponse{
		Status:           srctypes.AuthenticationStatusAuthenticated,
		SRCCorrelationID: payload.SRCCorrelationID,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
