package coreapi

import "encoding/json"

// BrandInfoParams identify the payment token whose brand metadata is
// fetched. All three codes are required.
type BrandInfoParams struct {
	ManagerCode  string
	MerchantCode string
	TokenCode    string
}

// TokenBrandInfo is the brand-info lookup result. The Core API performs no
// schema negotiation; fields absent from the response body are left zero and
// the undecoded body is kept in Raw.
type TokenBrandInfo struct {
	ServiceID            string          `json:"serviceId"`
	SRCClientID          string          `json:"srcClientId"`
	SRCDigitalCardID     string          `json:"srcDigitalCardId"`
	AcquirerMerchantID   string          `json:"acquirerMerchantId"`
	AcquirerBIN          string          `json:"acquirerBIN"`
	DPAName              string          `json:"dpaName"`
	DPAURI               string          `json:"dpaUri"`
	MerchantCategoryCode string          `json:"merchantCategoryCode"`
	MerchantCountryCode  string          `json:"merchantCountryCode"`
	BillingAddress       *BillingAddress `json:"billingAddress,omitempty"`
	Raw                  json.RawMessage `json:"-"`
}

// BillingAddress as the Core API reports it. Any field may be empty.
type BillingAddress struct {
	Line1       string `json:"line1"`
	Line2       string `json:"line2"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	CountryCode string `json:"countryCode"`
}
