/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jose implements JSON Web Encryption (RFC 7516) in its Compact
// Serialization form.
//
// A Codec binds one key algorithm and one content algorithm and offers
// Encrypt/Decrypt over that pair. The supported algorithms are the ones
// registered in algorithm.go: RSA-OAEP, RSA-OAEP-256, A128KW and A256KW
// for key wrapping; A128CBC-HS256 and A256CBC-HS512 (composite
// MAC-then-encrypt, built directly in this package) and A128GCM and
// A256GCM (AEAD, delegated whole to the provider) for content encryption.
//
// This package never calls into crypto/* itself. Every primitive
// operation — random bytes, key import/export, wrap/unwrap, encrypt/
// decrypt, sign — goes through a caller-supplied
// github.com/jwecore/jwe/spi/crypto.CryptoProvider, so the concrete choice
// of cryptographic library is entirely the caller's.
package jose
