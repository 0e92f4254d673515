/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jose

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jwecore/jwe/pkg/crypto/stdcrypto"
	"github.com/jwecore/jwe/pkg/doc/jose/internal/binary"
	cryptoapi "github.com/jwecore/jwe/spi/crypto"
)

// recipientKeyFor generates a key usable as the recipient side of keyAlg:
// an RSA key pair for the asymmetric algorithms, a shared AES key for the
// key-wrap algorithms. The returned key always carries both wrap and
// unwrap usage so the same value drives both Encrypt and Decrypt in these
// tests.
func recipientKeyFor(t *testing.T, provider cryptoapi.CryptoProvider, keyAlg KeyAlgorithm) cryptoapi.Key {
	t.Helper()

	spec, err := LookupKeyAlgorithm(keyAlg)
	require.NoError(t, err)

	usage := cryptoapi.UsageWrap.With(cryptoapi.UsageUnwrap)

	key, err := provider.GenerateKey(context.Background(), spec.ProviderAlg, true, usage)
	require.NoError(t, err)

	return key
}

func TestEncryptDecryptRoundTripAllAlgorithmPairs(t *testing.T) {
	provider := stdcrypto.New()
	plaintext := []byte("The true sign of intelligence is not knowledge but imagination.")

	keyAlgs := []KeyAlgorithm{RSAOAEP, RSAOAEP256, A128KW, A256KW}
	contentAlgs := []ContentAlgorithm{A128CBCHS256, A256CBCHS512, A128GCM, A256GCM}

	for _, keyAlg := range keyAlgs {
		for _, contentAlg := range contentAlgs {
			keyAlg, contentAlg := keyAlg, contentAlg

			t.Run(string(keyAlg)+"/"+string(contentAlg), func(t *testing.T) {
				codec, err := NewCodec(provider, keyAlg, contentAlg)
				require.NoError(t, err)

				key := recipientKeyFor(t, provider, keyAlg)

				compact, err := codec.Encrypt(context.Background(), key, plaintext)
				require.NoError(t, err)
				require.Equal(t, numCompactSegments-1, strings.Count(compact, "."))

				decoded, err := codec.Decrypt(context.Background(), key, compact)
				require.NoError(t, err)
				require.Equal(t, plaintext, decoded)
			})
		}
	}
}

func TestDecryptRejectsCritHeader(t *testing.T) {
	provider := stdcrypto.New()

	codec, err := NewCodec(provider, A128KW, A128CBCHS256)
	require.NoError(t, err)

	key := recipientKeyFor(t, provider, A128KW)

	compact, err := codec.Encrypt(context.Background(), key, []byte("hello"))
	require.NoError(t, err)

	header := `{"alg":"A128KW","enc":"A128CBC-HS256","crit":["exp"]}`
	tampered := replaceSegment(compact, 0, header)

	_, err = codec.Decrypt(context.Background(), key, tampered)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestDecryptRejectsTamperedTag(t *testing.T) {
	provider := stdcrypto.New()

	for _, contentAlg := range []ContentAlgorithm{A128CBCHS256, A128GCM} {
		contentAlg := contentAlg

		t.Run(string(contentAlg), func(t *testing.T) {
			codec, err := NewCodec(provider, A128KW, contentAlg)
			require.NoError(t, err)

			key := recipientKeyFor(t, provider, A128KW)

			compact, err := codec.Encrypt(context.Background(), key, []byte("hello, world"))
			require.NoError(t, err)

			segments := strings.Split(compact, ".")
			segments[4] = flipLastChar(segments[4])
			tampered := strings.Join(segments, ".")

			_, err = codec.Decrypt(context.Background(), key, tampered)
			require.Error(t, err)
		})
	}
}

func TestDecryptRejectsWrongSegmentCount(t *testing.T) {
	provider := stdcrypto.New()

	codec, err := NewCodec(provider, A128KW, A128CBCHS256)
	require.NoError(t, err)

	key := recipientKeyFor(t, provider, A128KW)

	cases := []string{
		"",
		"only.two",
		"a.b.c.d.e.f",
		"a..c.d.e",
	}

	for _, compact := range cases {
		_, err := codec.Decrypt(context.Background(), key, compact)
		require.ErrorIs(t, err, ErrMalformedInput)
	}
}

func TestDecryptRejectsMismatchedAlgorithmPair(t *testing.T) {
	provider := stdcrypto.New()

	encodeCodec, err := NewCodec(provider, A128KW, A128CBCHS256)
	require.NoError(t, err)

	key := recipientKeyFor(t, provider, A128KW)

	compact, err := encodeCodec.Encrypt(context.Background(), key, []byte("hello"))
	require.NoError(t, err)

	decodeCodec, err := NewCodec(provider, A128KW, A256GCM)
	require.NoError(t, err)

	_, err = decodeCodec.Decrypt(context.Background(), key, compact)
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

// replaceSegment swaps segment i of a compact serialization for the
// base64url encoding of raw, recomputing nothing else; callers use this to
// forge headers that legitimate Encrypt calls would never produce.
func replaceSegment(compact string, i int, raw string) string {
	segments := strings.Split(compact, ".")
	segments[i] = binary.Encode([]byte(raw))

	return strings.Join(segments, ".")
}

func flipLastChar(segment string) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	last := segment[len(segment)-1]
	idx := strings.IndexByte(alphabet, last)
	flipped := alphabet[(idx+1)%len(alphabet)]

	return segment[:len(segment)-1] + string(flipped)
}
