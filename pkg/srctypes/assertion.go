package srctypes

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/ldclabs/cose/key"
)

var ErrTruncatedAuthenticatorData = errors.New("srctypes: truncated authenticator data")

type AuthDataFlag byte

const (
	AuthDataFlagUserPresent AuthDataFlag = 1 << iota
	_
	AuthDataFlagUserVerified
	_
	_
	_
	AuthDataFlagAttestedCredentialDataIncluded
	AuthDataFlagExtensionDataIncluded
)

func (f AuthDataFlag) UserPresent() bool {
	return f&AuthDataFlagUserPresent != 0
}
func (f AuthDataFlag) UserVerified() bool {
	return f&AuthDataFlagUserVerified != 0
}
func (f AuthDataFlag) AttestedCredentialDataIncluded() bool {
	return f&AuthDataFlagAttestedCredentialDataIncluded != 0
}
func (f AuthDataFlag) ExtensionDataIncluded() bool {
	return f&AuthDataFlagExtensionDataIncluded != 0
}

// Assertion is the decoded form of the FIDO authenticator data blob found
// in FIDOArtifacts.
type Assertion struct {
	RPIDHash               []byte
	Flags                  AuthDataFlag
	SignCount              uint32
	AttestedCredentialData *AttestedCredentialData
	Extensions             []byte
}

type AttestedCredentialData struct {
	AAGUID              uuid.UUID
	CredentialID        []byte
	CredentialPublicKey key.Key
}

// ParseAssertionData decodes raw WebAuthn authenticator data as returned by
// the SDK after a passkey authentication: rpIdHash, flags, signCount and,
// when the AT flag is set, the attested credential data with its COSE
// public key.
func ParseAssertionData(data []byte) (*Assertion, error) {
	if len(data) < 37 {
		return nil, ErrTruncatedAuthenticatorData
	}

	a := &Assertion{
		RPIDHash:  data[:32],
		Flags:     AuthDataFlag(data[32]),
		SignCount: binary.BigEndian.Uint32(data[33:37]),
	}
	offset := 37
	if a.Flags.AttestedCredentialDataIncluded() {
		if len(data) < offset+18 {
			return nil, ErrTruncatedAuthenticatorData
		}
		credData := &AttestedCredentialData{
			AAGUID: uuid.UUID(data[offset : offset+16]),
		}
		offset += 16

		// Credential ID
		length := binary.BigEndian.Uint16(data[offset : offset+2])
		offset += 2
		if len(data) < offset+int(length) {
			return nil, ErrTruncatedAuthenticatorData
		}
		credData.CredentialID = data[offset : offset+int(length)]
		offset += int(length)

		// Credential Public Key
		dec := cbor.NewDecoder(bytes.NewReader(data[offset:]))
		if err := dec.Decode(&credData.CredentialPublicKey); err != nil {
			return nil, err
		}
		offset += dec.NumBytesRead()

		a.AttestedCredentialData = credData
	}

	if a.Flags.ExtensionDataIncluded() {
		a.Extensions = data[offset:]
	}

	return a, nil
}
