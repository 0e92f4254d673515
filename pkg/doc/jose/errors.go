/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jose

import "errors"

// Sentinel errors returned by this package. Wrap with fmt.Errorf and %w to
// add context; callers should compare with errors.Is against these values,
// never against the wrapped message text.
var (
	// ErrUnsupportedAlgorithm is returned when a header names a key or
	// content algorithm this package does not implement.
	ErrUnsupportedAlgorithm = errors.New("jose: unsupported algorithm")

	// ErrMalformedInput is returned when a compact serialization does not
	// parse: wrong segment count, invalid base64url, invalid header JSON,
	// or a rejected header member such as crit.
	ErrMalformedInput = errors.New("jose: malformed input")

	// ErrMalformedKey is returned when key material supplied to this
	// package (a JWK map, raw bytes) is not shaped the way the selected
	// algorithm requires.
	ErrMalformedKey = errors.New("jose: malformed key")

	// ErrIntegrityFailure is returned when an authentication tag (AEAD tag
	// or composite HMAC tag) fails verification. No plaintext is ever
	// returned alongside this error.
	ErrIntegrityFailure = errors.New("jose: integrity check failed")

	// ErrCryptoPrimitiveFailure is returned when the underlying
	// CryptoProvider reports an error performing a primitive operation.
	ErrCryptoPrimitiveFailure = errors.New("jose: crypto primitive failure")

	// ErrInternalInvariant is returned when this package detects a
	// condition its own construction should have made impossible, such as
	// a provider returning a CEK of the wrong length.
	ErrInternalInvariant = errors.New("jose: internal invariant violated")
)
