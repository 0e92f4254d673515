/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package stdcrypto implements spi/crypto.CryptoProvider over the Go
// standard library's crypto/* packages, with RFC 3394 AES Key Wrap
// supplied by github.com/go-jose/go-jose/v3/cipher since crypto/aes has no
// key-wrap mode of its own.
//
// Every Key this provider hands back is a *stdKey wrapping either raw
// symmetric bytes or an *rsa.PublicKey/*rsa.PrivateKey. Extractable keys
// report their raw bytes through ExportRaw; non-extractable keys (such as
// the CEK sub-keys, which the jose codec imports as non-extractable once
// split) refuse export.
package stdcrypto
