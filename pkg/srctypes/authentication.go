package srctypes

// AuthenticationPayload is the request object the SRC SDK expects from
// sdk.Authenticate. The nesting mirrors the SRC programme's wire format;
// field names are fixed by the SDK and must not be changed.
type AuthenticationPayload struct {
	SRCCorrelationID      string                `json:"srcCorrelationId"`
	ServiceID             string                `json:"serviceId"`
	SRCClientID           string                `json:"srcClientId"`
	TraceID               string                `json:"traceId"`
	AccountReference      AccountReference      `json:"accountReference"`
	AuthenticationMethod  AuthenticationMethod  `json:"authenticationMethod"`
	AuthenticationContext AuthenticationContext `json:"authenticationContext"`
}

type AccountReference struct {
	SRCDigitalCardID string `json:"srcDigitalCardId"`
}

type AuthenticationMethod struct {
	AuthenticationMethodType AuthenticationMethodType `json:"authenticationMethodType"`
	AuthenticationSubject    AuthenticationSubject    `json:"authenticationSubject"`
}

type AuthenticationContext struct {
	AuthenticationReasons []AuthenticationReason `json:"authenticationReasons"`
	AcquirerMerchantID    string                 `json:"acquirerMerchantId"`
	AcquirerBIN           string                 `json:"acquirerBIN"`
	DPAData               DPAData                `json:"dpaData"`
	DPATransactionOptions DPATransactionOptions  `json:"dpaTransactionOptions"`
}

type DPAData struct {
	DPAName string `json:"dpaName"`
	DPAURI  string `json:"dpaUri"`
}

type DPATransactionOptions struct {
	TransactionAmount    TransactionAmount `json:"transactionAmount"`
	DPALocale            string            `json:"dpaLocale"`
	ThreeDSInputData     ThreeDSInputData  `json:"threeDsInputData"`
	MerchantCategoryCode string            `json:"merchantCategoryCode"`
	MerchantCountryCode  string            `json:"merchantCountryCode"`
}

// TransactionAmount carries the amount as a string, as the SDK requires.
type TransactionAmount struct {
	TransactionAmount       string `json:"transactionAmount"`
	TransactionCurrencyCode string `json:"transactionCurrencyCode"`
}

type ThreeDSInputData struct {
	BillingAddress BillingAddress `json:"billingAddress"`
}

// BillingAddress fields are always present on the wire; absent source
// fields are sent as empty strings rather than omitted.
type BillingAddress struct {
	Line1       string `json:"line1"`
	Line2       string `json:"line2"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	CountryCode string `json:"countryCode"`
}
