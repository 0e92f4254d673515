/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwk

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jwecore/jwe/pkg/doc/jose/internal/binary"
)

func TestNormalizeRSAPublicAcceptsEquivalentEncodings(t *testing.T) {
	n := []byte{0x01, 0x02, 0x03, 0x04}

	base64url := map[string]interface{}{
		"kty": "RSA",
		"n":   binary.Encode(n),
		"e":   "AQAB", // 65537 in base64url
	}

	numeric := map[string]interface{}{
		"kty": "RSA",
		"n":   binary.Encode(n),
		"e":   float64(65537),
	}

	colonHex := map[string]interface{}{
		"kty": "RSA",
		"n":   binary.Encode(n),
		"e":   "01:00:01",
	}

	for _, raw := range []map[string]interface{}{base64url, numeric, colonHex} {
		params, err := NormalizeRSAPublic(raw)
		require.NoError(t, err)
		require.Equal(t, n, params.N)
		require.Equal(t, []byte{0x01, 0x00, 0x01}, params.E)
	}
}

func TestNormalizeRSAPublicRejectsWrongKty(t *testing.T) {
	_, err := NormalizeRSAPublic(map[string]interface{}{
		"kty": "EC",
		"n":   "AQAB",
		"e":   "AQAB",
	})
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestNormalizeRSAPublicRejectsMissingParameter(t *testing.T) {
	_, err := NormalizeRSAPublic(map[string]interface{}{"n": "AQAB"})
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestNormalizeRSAPrivateRoundTripsThroughRealKey(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	priv.Precompute()

	raw := map[string]interface{}{
		"kty": "RSA",
		"n":   binary.Encode(priv.N.Bytes()),
		"e":   priv.E,
		"d":   binary.Encode(priv.D.Bytes()),
		"p":   binary.Encode(priv.Primes[0].Bytes()),
		"q":   binary.Encode(priv.Primes[1].Bytes()),
		"dp":  binary.Encode(priv.Precomputed.Dp.Bytes()),
		"dq":  binary.Encode(priv.Precomputed.Dq.Bytes()),
		"qi":  binary.Encode(priv.Precomputed.Qinv.Bytes()),
	}

	params, err := NormalizeRSAPrivate(raw)
	require.NoError(t, err)

	rebuilt := params.PrivateKey()
	require.Equal(t, priv.N, rebuilt.N)
	require.Equal(t, priv.D, rebuilt.D)
	require.Equal(t, priv.Primes[0], rebuilt.Primes[0])
	require.Equal(t, priv.Primes[1], rebuilt.Primes[1])
}
