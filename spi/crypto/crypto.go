/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package crypto contains the CryptoProvider interface consumed by the JWE
// codec. The codec never touches a primitive cipher, RSA key, or random
// source directly: every such operation is delegated through this
// interface, so any backing primitive library (native, FFI, HSM, or
// platform-provided) satisfying the contract is acceptable.
package crypto

import "context"

// AlgorithmID names a primitive algorithm understood by a CryptoProvider.
// These are provider-facing identifiers, distinct from the JWE "alg"/"enc"
// header values the codec emits on the wire.
type AlgorithmID string

// Primitive algorithm identifiers accepted by a CryptoProvider.
const (
	RSAOAEPSHA1   AlgorithmID = "RSA-OAEP-SHA1"
	RSAOAEPSHA256 AlgorithmID = "RSA-OAEP-SHA256"
	AESKW128      AlgorithmID = "A128KW"
	AESKW256      AlgorithmID = "A256KW"
	AESCBC128     AlgorithmID = "AES-CBC-128"
	AESCBC256     AlgorithmID = "AES-CBC-256"
	AESGCM128     AlgorithmID = "AES-GCM-128"
	AESGCM256     AlgorithmID = "AES-GCM-256"
	HMACSHA256    AlgorithmID = "HMAC-SHA-256"
	HMACSHA384    AlgorithmID = "HMAC-SHA-384"
	HMACSHA512    AlgorithmID = "HMAC-SHA-512"
)

// KeyUsage is a bitset of the operations a Key may be used for.
type KeyUsage uint8

// Individual usage flags. A Key may carry more than one.
const (
	UsageWrap KeyUsage = 1 << iota
	UsageUnwrap
	UsageEncrypt
	UsageDecrypt
	UsageSign
	UsageVerify
)

// Has reports whether u includes flag.
func (u KeyUsage) Has(flag KeyUsage) bool { return u&flag != 0 }

// With returns u with flag added.
func (u KeyUsage) With(flag KeyUsage) KeyUsage { return u | flag }

// Key is an opaque handle to key material held by a CryptoProvider. The
// codec never inspects the underlying bytes directly; it only learns a
// key's usage and extractability.
type Key interface {
	// Usage reports which operations this key handle is permitted for.
	Usage() KeyUsage
	// Extractable reports whether ExportRaw is permitted on this key.
	Extractable() bool
}

// EncryptParams carries the per-call inputs to an AEAD Encrypt/Decrypt.
type EncryptParams struct {
	IV  []byte
	AAD []byte
}

// CryptoProvider is the external collaborator the JWE codec delegates every
// primitive cryptographic operation to (§6.4): RSA-OAEP, AES Key Wrap,
// AES-CBC, AES-GCM, HMAC, and a CSPRNG. Implementations may execute these
// operations asynchronously or on a worker pool; the codec only assumes
// sequential data-dependency, never concurrency, between calls.
type CryptoProvider interface {
	// Random returns n cryptographically random bytes.
	Random(ctx context.Context, n int) ([]byte, error)

	// ImportJWK imports a JWK-normalized key (see pkg/doc/jose/jwk) under
	// alg, restricted to usage, and marked non-extractable.
	ImportJWK(ctx context.Context, jwk map[string]interface{}, alg AlgorithmID, usage KeyUsage) (Key, error)

	// GenerateKey generates a fresh symmetric key for alg.
	GenerateKey(ctx context.Context, alg AlgorithmID, extractable bool, usage KeyUsage) (Key, error)

	// ExportRaw returns the raw bytes of an extractable key. Implementations
	// must reject the call if the key was not marked extractable.
	ExportRaw(ctx context.Context, key Key) ([]byte, error)

	// ImportRaw imports raw bytes as a key under alg.
	ImportRaw(ctx context.Context, raw []byte, alg AlgorithmID, extractable bool, usage KeyUsage) (Key, error)

	// WrapRaw wraps key's raw material under wrappingKey using wrapAlg.
	WrapRaw(ctx context.Context, key, wrappingKey Key, wrapAlg AlgorithmID) ([]byte, error)

	// UnwrapRaw unwraps wrapped under unwrappingKey using wrapAlg, and
	// imports the resulting bytes as innerAlg.
	UnwrapRaw(ctx context.Context, wrapped []byte, unwrappingKey Key, wrapAlg, innerAlg AlgorithmID,
		extractable bool, usage KeyUsage) (Key, error)

	// Encrypt encrypts plaintext under key. For an AEAD algorithm the
	// returned bytes are ciphertext||tag; for AES-CBC they are the raw
	// padded ciphertext and params.AAD is ignored.
	Encrypt(ctx context.Context, params EncryptParams, key Key, plaintext []byte) ([]byte, error)

	// Decrypt is the inverse of Encrypt. For an AEAD algorithm
	// ciphertextWithTag is ciphertext||tag and the provider performs its
	// own constant-time tag verification; for AES-CBC it is the raw padded
	// ciphertext and params.AAD is ignored.
	Decrypt(ctx context.Context, params EncryptParams, key Key, ciphertextWithTag []byte) ([]byte, error)

	// Sign computes an HMAC over data under key using hmacAlg.
	Sign(ctx context.Context, hmacAlg AlgorithmID, key Key, data []byte) ([]byte, error)
}
