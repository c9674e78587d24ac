package passkeys

import (
	"errors"
	"strings"

	"github.com/corepay/srcpasskeys/pkg/coreapi"
	"github.com/corepay/srcpasskeys/pkg/srcsdk"
)

// ErrorName is carried by every wrapper error so Core-side callers can
// recognize failures originating here.
const ErrorName = "CorePasskeysError"

type ErrorCode string

const (
	CodeInvalidInput   ErrorCode = "INVALID_INPUT"
	CodeCoreAPIError   ErrorCode = "CORE_API_ERROR"
	CodeNotInitialized ErrorCode = "NOT_INITIALIZED"
	CodeNetworkError   ErrorCode = "NETWORK_ERROR"
	CodeTimeout        ErrorCode = "TIMEOUT"
	CodeAuthFailed     ErrorCode = "AUTH_FAILED"
	CodeLoadError      ErrorCode = "LOAD_ERROR"
)

// Error is the single error type the wrapper surfaces. Every failure from
// the Core API, the SDK load or the SDK invocation is wrapped into one;
// nothing is recovered internally.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func newError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func (e *Error) Error() string {
	return ErrorName + " [" + string(e.Code) + "]: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

var errMissingAmount = errors.New("passkeys: transaction amount is required")

// toCoreAPIError wraps a brand-info lookup failure. Missing identifiers are
// flagged before any network access and map to InvalidInput.
func toCoreAPIError(err error) *Error {
	if errors.Is(err, coreapi.ErrMissingIdentifier) {
		return newError(CodeInvalidInput, err.Error(), err)
	}
	return newError(CodeCoreAPIError, "token brand info lookup failed: "+err.Error(), err)
}

// toWrapperError classifies an SDK invocation failure. The SDK's structured
// reason code is preferred; message substrings are a fallback for failures
// that reach us without one. The original message is always preserved.
func toWrapperError(err error) *Error {
	var loadErr *srcsdk.LoadError
	if errors.As(err, &loadErr) {
		return newError(CodeLoadError, err.Error(), err)
	}

	var sdkErr *srcsdk.SDKError
	if errors.As(err, &sdkErr) {
		switch sdkErr.Reason {
		case srcsdk.ReasonNetworkError:
			return newError(CodeNetworkError, "network failure during authentication: "+err.Error(), err)
		case srcsdk.ReasonTimeout:
			return newError(CodeTimeout, "authentication timed out: "+err.Error(), err)
		case srcsdk.ReasonInvalidRequest:
			return newError(CodeInvalidInput, "authentication request rejected: "+err.Error(), err)
		case srcsdk.ReasonAuthFailed:
			return newError(CodeAuthFailed, "authentication failed: "+err.Error(), err)
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "network") || strings.Contains(msg, "fetch"):
		return newError(CodeNetworkError, "network failure during authentication: "+err.Error(), err)
	case strings.Contains(msg, "timeout"):
		return newError(CodeTimeout, "authentication timed out: "+err.Error(), err)
	case strings.Contains(msg, "invalid") || strings.Contains(msg, "validation"):
		return newError(CodeInvalidInput, "authentication request rejected: "+err.Error(), err)
	default:
		return newError(CodeAuthFailed, "authentication failed: "+err.Error(), err)
	}
}

func notInitializedError() *Error {
	return newError(CodeNotInitialized, "wrapper is not initialized; call Initialize first", nil)
}
