package passkeys

import (
	"log/slog"

	"github.com/golang-jwt/jwt/v5"

	"github.com/corepay/srcpasskeys/pkg/srctypes"
)

// toAuthResult extracts the Core-facing subset of an SDK response. It is
// total: malformed optional material (idToken, FIDO artifacts) is dropped
// rather than failing the authentication that already succeeded.
func toAuthResult(resp *srctypes.AuthenticationResponse, logger *slog.Logger) *AuthenticationResult {
	res := &AuthenticationResult{
		Status:           resp.Status,
		SRCCorrelationID: resp.SRCCorrelationID,
		IDToken:          resp.IDToken,
	}

	if resp.IDToken != "" {
		res.IDTokenClaims = decodeIDTokenClaims(resp.IDToken, logger)
	}

	if resp.FIDO != nil && len(resp.FIDO.AuthenticatorData) > 0 {
		assertion, err := srctypes.ParseAssertionData(resp.FIDO.AuthenticatorData)
		if err != nil {
			logger.Warn("dropping undecodable FIDO assertion", "err", err)
		} else {
			res.Assertion = assertion
		}
	}

	return res
}

// decodeIDTokenClaims reads the claim set without verifying the signature.
// The token travels onward to the Core backend, which owns verification.
func decodeIDTokenClaims(token string, logger *slog.Logger) map[string]any {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		logger.Debug("idToken claims not extractable", "err", err)
		return nil
	}
	return claims
}
