package srctypes

// AuthenticationResponse is the object the SRC SDK returns from a
// successful sdk.Authenticate call. Fields the wrapper does not extract
// are dropped during decoding.
type AuthenticationResponse struct {
	Status           AuthenticationStatus `json:"status"`
	SRCCorrelationID string               `json:"srcCorrelationId"`
	IDToken          string               `json:"idToken,omitempty"`
	FIDO             *FIDOArtifacts       `json:"fido,omitempty"`
}

// FIDOArtifacts carries the raw passkey assertion material the SDK returns
// when the authentication method was MANAGED_AUTHENTICATION. All fields are
// base64 on the wire.
type FIDOArtifacts struct {
	AuthenticatorData []byte `json:"authenticatorData"`
	Signature         []byte `json:"signature,omitempty"`
	ClientDataJSON    []byte `json:"clientDataJSON,omitempty"`
}
