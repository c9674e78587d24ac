package passkeys

import (
	"crypto/sha256"
	"encoding/binary"
	"log/slog"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corepay/srcpasskeys/pkg/srctypes"
)

func TestToAuthResultExtractsSubset(t *testing.T) {
	res := toAuthResult(&srctypes.AuthenticationResponse{
		Status:           srctypes.AuthenticationStatusDeclined,
		SRCCorrelationID: "corr-1",
	}, slog.Default())

	assert.Equal(t, srctypes.AuthenticationStatusDeclined, res.Status)
	assert.Equal(t, "corr-1", res.SRCCorrelationID)
	assert.Empty(t, res.IDToken)
	assert.Nil(t, res.IDTokenClaims)
	assert.Nil(t, res.Assertion)
}

func TestToAuthResultDecodesIDTokenClaims(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "dcard-1",
		"acr": "passkey",
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	res := toAuthResult(&srctypes.AuthenticationResponse{
		Status:           srctypes.AuthenticationStatusAuthenticated,
		SRCCorrelationID: "corr-1",
		IDToken:          token,
	}, slog.Default())

	assert.Equal(t, token, res.IDToken)
	require.NotNil(t, res.IDTokenClaims)
	assert.Equal(t, "dcard-1", res.IDTokenClaims["sub"])
	assert.Equal(t, "passkey", res.IDTokenClaims["acr"])
}

func TestToAuthResultDropsMalformedIDToken(t *testing.T) {
	res := toAuthResult(&srctypes.AuthenticationResponse{
		Status:  srctypes.AuthenticationStatusAuthenticated,
		IDToken: "not-a-jwt",
	}, slog.Default())

	assert.Equal(t, "not-a-jwt", res.IDToken, "raw token still forwarded")
	assert.Nil(t, res.IDTokenClaims)
}

func TestToAuthResultParsesFIDOAssertion(t *testing.T) {
	rpIDHash := sha256.Sum256([]byte("merchant.example"))
	authData := make([]byte, 37)
	copy(authData, rpIDHash[:])
	authData[32] = byte(srctypes.AuthDataFlagUserPresent | srctypes.AuthDataFlagUserVerified)
	binary.BigEndian.PutUint32(authData[33:37], 42)

	res := toAuthResult(&srctypes.AuthenticationResponse{
		Status: srctypes.AuthenticationStatusAuthenticated,
		FIDO:   &srctypes.FIDOArtifacts{AuthenticatorData: authData},
	}, slog.Default())

	require.NotNil(t, res.Assertion)
	assert.Equal(t, uint32(42), res.Assertion.SignCount)
	assert.True(t, res.Assertion.Flags.UserPresent())
	assert.True(t, res.Assertion.Flags.UserVerified())
}

func TestToAuthResultDropsUndecodableFIDOAssertion(t *testing.T) {
	res := toAuthResult(&srctypes.AuthenticationResponse{
		Status: srctypes.AuthenticationStatusAuthenticated,
		FIDO:   &srctypes.FIDOArtifacts{AuthenticatorData: []byte{0x01, 0x02}},
	}, slog.Default())

	assert.Nil(t, res.Assertion, "truncated authenticator data is dropped, not fatal")
}
