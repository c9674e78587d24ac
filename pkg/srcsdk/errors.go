package srcsdk

import (
	"strconv"
)

// LoadError reports that the SDK endpoint could not be reached or refused
// the load round-trip. The wrapper never retries a failed load; the next
// initialization attempt starts over.
type LoadError struct {
	URL string
	Err error
}

func (e *LoadError) Error() string {
	return "srcsdk: SDK failed to load from " + e.URL + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SDKError is a structured failure returned by the SDK's authenticate
// endpoint. Reason is the SDK's machine-readable code and is preferred over
// message inspection when classifying the failure.
type SDKError struct {
	Status  int    `json:"-"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (e *SDKError) Error() string {
	msg := "srcsdk: authenticate failed (" + strconv.Itoa(e.Status)
	if e.Reason != "" {
		msg += " " + e.Reason
	}
	msg += ")"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Reason codes the SDK is known to emit.
const (
	ReasonNetworkError   = "NETWORK_ERROR"
	ReasonTimeout        = "TIMEOUT"
	ReasonInvalidRequest = "INVALID_REQUEST"
	ReasonAuthFailed     = "AUTHENTICATION_FAILED"
)
