package srctypes

type AuthenticationMethodType string

const (
	AuthenticationMethodType3DS                   AuthenticationMethodType = "3DS"
	AuthenticationMethodTypeManagedAuthentication AuthenticationMethodType = "MANAGED_AUTHENTICATION"
)

type AuthenticationReason string

const (
	AuthenticationReasonTransaction AuthenticationReason = "TRANSACTION_AUTHENTICATION"
	AuthenticationReasonEnrol       AuthenticationReason = "ENROL_FINANCIAL_INSTRUMENT"
)

type AuthenticationSubject string

const (
	AuthenticationSubjectCardholder AuthenticationSubject = "CARDHOLDER"
)

// AuthenticationStatus values observed from the SDK. The set is not
// exhaustive; the SDK may introduce new statuses, which are passed through.
type AuthenticationStatus string

const (
	AuthenticationStatusAuthenticated    AuthenticationStatus = "AUTHENTICATED"
	AuthenticationStatusNotAuthenticated AuthenticationStatus = "NOT_AUTHENTICATED"
	AuthenticationStatusDeclined         AuthenticationStatus = "DECLINED"
)
