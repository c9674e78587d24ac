package passkeys

import (
	"encoding/binary"
	mrand "math/rand"
	"strconv"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/corepay/srcpasskeys/pkg/coreapi"
	"github.com/corepay/srcpasskeys/pkg/srctypes"
)

var authenticationMethodTypes = map[AuthMethod]srctypes.AuthenticationMethodType{
	AuthMethod3DS:     srctypes.AuthenticationMethodType3DS,
	AuthMethodPasskey: srctypes.AuthenticationMethodTypeManagedAuthentication,
}

var authenticationReasons = map[AuthReason]srctypes.AuthenticationReason{
	AuthReasonLogin:   srctypes.AuthenticationReasonTransaction,
	AuthReasonPayment: srctypes.AuthenticationReasonTransaction,
	AuthReasonEnroll:  srctypes.AuthenticationReasonEnrol,
}

// newCorrelationID returns a fresh version-4 UUID string. The strong random
// source is used when available; if it is exhausted the UUID is fabricated
// from a pseudo-random source with the v4 version and variant bits forced.
func newCorrelationID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}

	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], mrand.Uint64())
	binary.BigEndian.PutUint64(b[8:16], mrand.Uint64())
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return uuid.UUID(b).String()
}

// toAuthenticationPayload translates merged Core data into the SDK's
// request shape. It is pure apart from the two correlation identifiers
// generated per call. The amount is the only required nested field; every
// billing address field falls back to an empty string.
func toAuthenticationPayload(in AuthData) (*srctypes.AuthenticationPayload, error) {
	if in.Amount == nil {
		return nil, errMissingAmount
	}

	return &srctypes.AuthenticationPayload{
		SRCCorrelationID: newCorrelationID(),
		ServiceID:        in.ServiceID,
		SRCClientID:      in.SRCClientID,
		TraceID:          newCorrelationID(),
		AccountReference: srctypes.AccountReference{
			SRCDigitalCardID: in.SRCDigitalCardID,
		},
		AuthenticationMethod: srctypes.AuthenticationMethod{
			AuthenticationMethodType: lo.ValueOr(authenticationMethodTypes, in.Method, srctypes.AuthenticationMethodType3DS),
			AuthenticationSubject:    srctypes.AuthenticationSubjectCardholder,
		},
		AuthenticationContext: srctypes.AuthenticationContext{
			AuthenticationReasons: []srctypes.AuthenticationReason{
				lo.ValueOr(authenticationReasons, in.Reason, srctypes.AuthenticationReasonTransaction),
			},
			AcquirerMerchantID: in.AcquirerMerchantID,
			AcquirerBIN:        in.AcquirerBIN,
			DPAData: srctypes.DPAData{
				DPAName: in.DPAName,
				DPAURI:  in.DPAURI,
			},
			DPATransactionOptions: srctypes.DPATransactionOptions{
				TransactionAmount: srctypes.TransactionAmount{
					TransactionAmount:       strconv.FormatFloat(in.Amount.Value, 'f', -1, 64),
					TransactionCurrencyCode: in.Amount.Currency,
				},
				DPALocale:            in.Locale,
				ThreeDSInputData:     srctypes.ThreeDSInputData{BillingAddress: toBillingAddress(in.BillingAddress)},
				MerchantCategoryCode: in.MerchantCategoryCode,
				MerchantCountryCode:  in.MerchantCountryCode,
			},
		},
	}, nil
}

// toBillingAddress copies the Core address field-for-field. A nil or
// partially filled source never fails; absent fields stay empty strings.
func toBillingAddress(addr *coreapi.BillingAddress) srctypes.BillingAddress {
	if addr == nil {
		return srctypes.BillingAddress{}
	}
	return srctypes.BillingAddress{
		Line1:       addr.Line1,
		Line2:       addr.Line2,
		City:        addr.City,
		State:       addr.State,
		Zip:         addr.Zip,
		CountryCode: addr.CountryCode,
	}
}

// mergeAuthData combines a brand-info lookup with the caller's transaction
// parameters. Caller-supplied descriptors win over the fetched ones.
func mergeAuthData(info *coreapi.TokenBrandInfo, params AuthRequestParams, locale string) AuthData {
	return AuthData{
		ServiceID:        info.ServiceID,
		SRCClientID:      info.SRCClientID,
		SRCDigitalCardID: info.SRCDigitalCardID,

		Method: params.Method,
		Reason: params.Reason,
		Amount: params.Amount,

		AcquirerMerchantID:   lo.CoalesceOrEmpty(params.AcquirerMerchantID, info.AcquirerMerchantID),
		AcquirerBIN:          lo.CoalesceOrEmpty(params.AcquirerBIN, info.AcquirerBIN),
		DPAName:              lo.CoalesceOrEmpty(params.DPAName, info.DPAName),
		DPAURI:               lo.CoalesceOrEmpty(params.DPAURI, info.DPAURI),
		MerchantCategoryCode: lo.CoalesceOrEmpty(params.MerchantCategoryCode, info.MerchantCategoryCode),
		MerchantCountryCode:  lo.CoalesceOrEmpty(params.MerchantCountryCode, info.MerchantCountryCode),
		BillingAddress:       info.BillingAddress,

		Locale: locale,
	}
}
