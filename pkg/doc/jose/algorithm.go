/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jose

import (
	"fmt"

	cryptoapi "github.com/jwecore/jwe/spi/crypto"
)

// KeyAlgorithm identifies a JWE "alg" value: the algorithm used to produce
// the encrypted key segment.
type KeyAlgorithm string

// ContentAlgorithm identifies a JWE "enc" value: the algorithm used to
// encrypt the plaintext under the CEK.
type ContentAlgorithm string

// Registered key algorithms.
const (
	RSAOAEP    KeyAlgorithm = "RSA-OAEP"
	RSAOAEP256 KeyAlgorithm = "RSA-OAEP-256"
	A128KW     KeyAlgorithm = "A128KW"
	A256KW     KeyAlgorithm = "A256KW"
)

// Registered content algorithms.
const (
	A128CBCHS256 ContentAlgorithm = "A128CBC-HS256"
	A256CBCHS512 ContentAlgorithm = "A256CBC-HS512"
	A128GCM      ContentAlgorithm = "A128GCM"
	A256GCM      ContentAlgorithm = "A256GCM"
)

// KeyAlgSpec describes how a key algorithm wraps and unwraps a CEK.
type KeyAlgSpec struct {
	// JWEName is the literal "alg" header value.
	JWEName KeyAlgorithm

	// ProviderAlg is the identifier passed to the CryptoProvider to
	// select the wrapping primitive.
	ProviderAlg cryptoapi.AlgorithmID

	// Asymmetric is true for key-encryption algorithms (RSA-OAEP family)
	// and false for key-wrapping algorithms (AES-KW family).
	// ImportRSAPublicKey and ImportRSAPrivateKey accept only algorithms
	// with Asymmetric set.
	Asymmetric bool
}

// MACParams describes the HMAC half of a composite content algorithm.
type MACParams struct {
	// ProviderAlg selects the HMAC primitive from the CryptoProvider.
	ProviderAlg cryptoapi.AlgorithmID

	// KeyBytes is the length, in bytes, of the MAC half of the CEK.
	KeyBytes int

	// TagBytes is the length, in bytes, of the truncated authentication
	// tag carried in the compact serialization's tag segment.
	TagBytes int
}

// ContentAlgSpec describes how a content algorithm encrypts and
// authenticates the plaintext.
type ContentAlgSpec struct {
	// JWEName is the literal "enc" header value.
	JWEName ContentAlgorithm

	// ProviderAlg selects the encryption primitive from the
	// CryptoProvider: an AEAD cipher for the direct algorithms, or the
	// CBC half of a composite algorithm.
	ProviderAlg cryptoapi.AlgorithmID

	// CEKBytes is the total length, in bytes, of the content encryption
	// key this algorithm consumes.
	CEKBytes int

	// IVBytes is the length, in bytes, of the initialization vector.
	IVBytes int

	// MAC is non-nil for composite (MAC-then-encrypt) algorithms and nil
	// for AEAD algorithms.
	MAC *MACParams
}

// Composite reports whether this algorithm builds its own MAC-then-encrypt
// construction (true) or delegates authentication to an AEAD cipher
// (false).
func (s ContentAlgSpec) Composite() bool {
	return s.MAC != nil
}

var keyAlgRegistry = map[KeyAlgorithm]KeyAlgSpec{
	RSAOAEP: {
		JWEName:     RSAOAEP,
		ProviderAlg: cryptoapi.RSAOAEPSHA1,
		Asymmetric:  true,
	},
	RSAOAEP256: {
		JWEName:     RSAOAEP256,
		ProviderAlg: cryptoapi.RSAOAEPSHA256,
		Asymmetric:  true,
	},
	A128KW: {
		JWEName:     A128KW,
		ProviderAlg: cryptoapi.AESKW128,
		Asymmetric:  false,
	},
	A256KW: {
		JWEName:     A256KW,
		ProviderAlg: cryptoapi.AESKW256,
		Asymmetric:  false,
	},
}

var contentAlgRegistry = map[ContentAlgorithm]ContentAlgSpec{
	A128CBCHS256: {
		JWEName:     A128CBCHS256,
		ProviderAlg: cryptoapi.AESCBC128,
		CEKBytes:    32,
		IVBytes:     16,
		MAC: &MACParams{
			ProviderAlg: cryptoapi.HMACSHA256,
			KeyBytes:    16,
			TagBytes:    16,
		},
	},
	A256CBCHS512: {
		JWEName:     A256CBCHS512,
		ProviderAlg: cryptoapi.AESCBC256,
		CEKBytes:    64,
		IVBytes:     16,
		MAC: &MACParams{
			ProviderAlg: cryptoapi.HMACSHA512,
			KeyBytes:    32,
			TagBytes:    32,
		},
	},
	A128GCM: {
		JWEName:     A128GCM,
		ProviderAlg: cryptoapi.AESGCM128,
		CEKBytes:    16,
		IVBytes:     12,
	},
	A256GCM: {
		JWEName:     A256GCM,
		ProviderAlg: cryptoapi.AESGCM256,
		CEKBytes:    32,
		IVBytes:     12,
	},
}

// LookupKeyAlgorithm returns the registered spec for alg, or
// ErrUnsupportedAlgorithm if alg is not registered.
func LookupKeyAlgorithm(alg KeyAlgorithm) (KeyAlgSpec, error) {
	spec, ok := keyAlgRegistry[alg]
	if !ok {
		return KeyAlgSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}

	return spec, nil
}

// LookupContentAlgorithm returns the registered spec for enc, or
// ErrUnsupportedAlgorithm if enc is not registered.
func LookupContentAlgorithm(enc ContentAlgorithm) (ContentAlgSpec, error) {
	spec, ok := contentAlgRegistry[enc]
	if !ok {
		return ContentAlgSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, enc)
	}

	return spec, nil
}
