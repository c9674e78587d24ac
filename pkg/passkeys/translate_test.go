package passkeys

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corepay/srcpasskeys/pkg/coreapi"
	"github.com/corepay/srcpasskeys/pkg/srctypes"
)

func validAuthData() AuthData {
	return AuthData{
		ServiceID:        "svc-1",
		SRCClientID:      "client-1",
		SRCDigitalCardID: "dcard-1",
		Method:           AuthMethodPasskey,
		Reason:           AuthReasonPayment,
		Amount:           &Amount{Value: 1250.50, Currency: "USD"},
		Locale:           "en_US",
	}
}

func TestAuthenticationMethodMapping(t *testing.T) {
	tests := []struct {
		method AuthMethod
		want   srctypes.AuthenticationMethodType
	}{
		{AuthMethod3DS, srctypes.AuthenticationMethodType3DS},
		{AuthMethodPasskey, srctypes.AuthenticationMethodTypeManagedAuthentication},
		{"", srctypes.AuthenticationMethodType3DS},
		{"sms", srctypes.AuthenticationMethodType3DS},
		{"webauthn", srctypes.AuthenticationMethodType3DS},
		{"3DS", srctypes.AuthenticationMethodType3DS},
		{"biometric", srctypes.AuthenticationMethodType3DS},
	}

	for _, tt := range tests {
		in := validAuthData()
		in.Method = tt.method

		payload, err := toAuthenticationPayload(in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, payload.AuthenticationMethod.AuthenticationMethodType, "method %q", tt.method)
	}
}

func TestAuthenticationReasonMapping(t *testing.T) {
	tests := []struct {
		reason AuthReason
		want   srctypes.AuthenticationReason
	}{
		{AuthReasonLogin, srctypes.AuthenticationReasonTransaction},
		{AuthReasonPayment, srctypes.AuthenticationReasonTransaction},
		{AuthReasonEnroll, srctypes.AuthenticationReasonEnrol},
		{"", srctypes.AuthenticationReasonTransaction},
		{"signup", srctypes.AuthenticationReasonTransaction},
		{"checkout", srctypes.AuthenticationReasonTransaction},
	}

	for _, tt := range tests {
		in := validAuthData()
		in.Reason = tt.reason

		payload, err := toAuthenticationPayload(in)
		require.NoError(t, err)
		require.Len(t, payload.AuthenticationContext.AuthenticationReasons, 1)
		assert.Equal(t, tt.want, payload.AuthenticationContext.AuthenticationReasons[0], "reason %q", tt.reason)
	}
}

func TestCorrelationIDsAreDistinctV4(t *testing.T) {
	payload, err := toAuthenticationPayload(validAuthData())
	require.NoError(t, err)

	corrID, err := uuid.Parse(payload.SRCCorrelationID)
	require.NoError(t, err)
	traceID, err := uuid.Parse(payload.TraceID)
	require.NoError(t, err)

	assert.Equal(t, uuid.Version(4), corrID.Version())
	assert.Equal(t, uuid.Version(4), traceID.Version())
	assert.NotEqual(t, payload.SRCCorrelationID, payload.TraceID)
}

func TestBillingAddressDefaultsToEmptyStrings(t *testing.T) {
	in := validAuthData()
	in.BillingAddress = nil

	payload, err := toAuthenticationPayload(in)
	require.NoError(t, err)

	addr := payload.AuthenticationContext.DPATransactionOptions.ThreeDSInputData.BillingAddress
	assert.Equal(t, srctypes.BillingAddress{}, addr)

	in.BillingAddress = &coreapi.BillingAddress{Line1: "1 Demo St", CountryCode: "CL"}
	payload, err = toAuthenticationPayload(in)
	require.NoError(t, err)

	addr = payload.AuthenticationContext.DPATransactionOptions.ThreeDSInputData.BillingAddress
	assert.Equal(t, "1 Demo St", addr.Line1)
	assert.Equal(t, "CL", addr.CountryCode)
	assert.Equal(t, "", addr.Line2)
	assert.Equal(t, "", addr.City)
	assert.Equal(t, "", addr.State)
	assert.Equal(t, "", addr.Zip)
}

func TestAmountCoercion(t *testing.T) {
	in := validAuthData()
	in.Amount = &Amount{Value: 1250.50, Currency: "CLP"}

	payload, err := toAuthenticationPayload(in)
	require.NoError(t, err)

	amount := payload.AuthenticationContext.DPATransactionOptions.TransactionAmount
	assert.Equal(t, "1250.5", amount.TransactionAmount)
	assert.Equal(t, "CLP", amount.TransactionCurrencyCode)
}

func TestMissingAmountFails(t *testing.T) {
	in := validAuthData()
	in.Amount = nil

	_, err := toAuthenticationPayload(in)
	require.ErrorIs(t, err, errMissingAmount)
}

func TestSubjectIsAlwaysCardholder(t *testing.T) {
	payload, err := toAuthenticationPayload(validAuthData())
	require.NoError(t, err)
	assert.Equal(t, srctypes.AuthenticationSubjectCardholder, payload.AuthenticationMethod.AuthenticationSubject)
}

func TestMergeAuthDataPrecedence(t *testing.T) {
	info := &coreapi.TokenBrandInfo{
		ServiceID:           "svc-1",
		SRCClientID:         "client-1",
		SRCDigitalCardID:    "dcard-1",
		AcquirerMerchantID:  "fetched-merchant",
		AcquirerBIN:         "545454",
		DPAName:             "Fetched Name",
		MerchantCountryCode: "US",
	}
	params := AuthRequestParams{
		Method:             AuthMethod3DS,
		Amount:             &Amount{Value: 10, Currency: "USD"},
		AcquirerMerchantID: "caller-merchant",
	}

	data := mergeAuthData(info, params, "es_CL")

	assert.Equal(t, "svc-1", data.ServiceID)
	assert.Equal(t, "dcard-1", data.SRCDigitalCardID)
	assert.Equal(t, "caller-merchant", data.AcquirerMerchantID, "caller descriptor wins")
	assert.Equal(t, "545454", data.AcquirerBIN, "fetched descriptor fills the gap")
	assert.Equal(t, "Fetched Name", data.DPAName)
	assert.Equal(t, "es_CL", data.Locale)
}
