package passkeys

import (
	"github.com/corepay/srcpasskeys/pkg/coreapi"
	"github.com/corepay/srcpasskeys/pkg/srctypes"
)

// AuthMethod is the Core-facing authentication method selector.
// Unrecognized values translate to 3DS.
type AuthMethod string

const (
	AuthMethod3DS     AuthMethod = "3ds"
	AuthMethodPasskey AuthMethod = "passkey"
)

// AuthReason is the Core-facing reason for the authentication.
// Unrecognized values translate to a transaction authentication.
type AuthReason string

const (
	AuthReasonLogin   AuthReason = "login"
	AuthReasonPayment AuthReason = "payment"
	AuthReasonEnroll  AuthReason = "enroll"
)

// Amount is a monetary amount. Value is coerced to its string form before
// it reaches the SDK.
type Amount struct {
	Value    float64
	Currency string
}

// AuthRequestParams are the caller-supplied inputs to ExecuteAuthenticate.
// The three codes address the token; the descriptors override what the
// brand-info lookup returns when set.
type AuthRequestParams struct {
	ManagerCode  string
	MerchantCode string
	TokenCode    string

	Method AuthMethod
	Reason AuthReason
	Amount *Amount

	AcquirerMerchantID   string
	AcquirerBIN          string
	DPAName              string
	DPAURI               string
	MerchantCategoryCode string
	MerchantCountryCode  string
}

// AuthData is the merged input to the payload translator: brand-info fields
// from the Core API combined with the caller's transaction parameters.
type AuthData struct {
	ServiceID        string
	SRCClientID      string
	SRCDigitalCardID string

	Method AuthMethod
	Reason AuthReason
	Amount *Amount

	AcquirerMerchantID   string
	AcquirerBIN          string
	DPAName              string
	DPAURI               string
	MerchantCategoryCode string
	MerchantCountryCode  string
	BillingAddress       *coreapi.BillingAddress

	Locale string
}

// AuthenticationResult is the simplified, Core-facing outcome of an
// authentication. Fields beyond this subset are dropped.
type AuthenticationResult struct {
	Status           srctypes.AuthenticationStatus
	SRCCorrelationID string

	// IDToken is the raw token from the SDK response, when present.
	// IDTokenClaims holds its unverified claim set; verification is the
	// Core backend's job, this library only surfaces the claims.
	IDToken       string
	IDTokenClaims map[string]any

	// Assertion is the decoded passkey assertion, present only when the SDK
	// returned FIDO artifacts.
	Assertion *srctypes.Assertion
}
