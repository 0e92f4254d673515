/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package binary holds the low-level byte-oriented helpers the JWE codec
// builds on: base64url, big-endian integer framing, and a constant-time
// byte comparison. None of it is JWE-specific.
package binary

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidEncoding is returned by Decode when the input is not valid
// base64url, with or without padding.
var ErrInvalidEncoding = errors.New("binary: invalid base64url encoding")

// Encode returns b encoded as base64url with no padding (RFC 4648 §5).
func Encode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// Decode decodes s as base64url. Missing padding is tolerated, as are the
// two standard-base64 substitutions ('+' for '-', '/' for '_').
func Decode(s string) ([]byte, error) {
	normalized := strings.Map(func(r rune) rune {
		switch r {
		case '+':
			return '-'
		case '/':
			return '_'
		}
		return r
	}, s)
	normalized = strings.TrimRight(normalized, "=")

	b, err := base64.RawURLEncoding.Strict().DecodeString(normalized)
	if err != nil {
		return nil, ErrInvalidEncoding
	}

	return b, nil
}
