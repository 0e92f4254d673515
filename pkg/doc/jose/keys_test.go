/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jose

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jwecore/jwe/pkg/crypto/stdcrypto"
	"github.com/jwecore/jwe/pkg/doc/jose/internal/binary"
)

func rsaJWK(t *testing.T, priv *rsa.PrivateKey, private bool) map[string]interface{} {
	t.Helper()

	priv.Precompute()

	jwk := map[string]interface{}{
		"kty": "RSA",
		"n":   binary.Encode(priv.N.Bytes()),
		"e":   priv.E,
	}

	if private {
		jwk["d"] = binary.Encode(priv.D.Bytes())
		jwk["p"] = binary.Encode(priv.Primes[0].Bytes())
		jwk["q"] = binary.Encode(priv.Primes[1].Bytes())
		jwk["dp"] = binary.Encode(priv.Precomputed.Dp.Bytes())
		jwk["dq"] = binary.Encode(priv.Precomputed.Dq.Bytes())
		jwk["qi"] = binary.Encode(priv.Precomputed.Qinv.Bytes())
	}

	return jwk
}

func TestImportRSAKeysRoundTripEncryptDecrypt(t *testing.T) {
	provider := stdcrypto.New()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pubKey, err := ImportRSAPublicKey(context.Background(), provider, RSAOAEP256, rsaJWK(t, priv, false))
	require.NoError(t, err)

	privKey, err := ImportRSAPrivateKey(context.Background(), provider, RSAOAEP256, rsaJWK(t, priv, true))
	require.NoError(t, err)

	codec, err := NewCodec(provider, RSAOAEP256, A256GCM)
	require.NoError(t, err)

	compact, err := codec.Encrypt(context.Background(), pubKey, []byte("secret message"))
	require.NoError(t, err)

	plaintext, err := codec.Decrypt(context.Background(), privKey, compact)
	require.NoError(t, err)
	require.Equal(t, []byte("secret message"), plaintext)
}

func TestImportRSAPublicKeyRejectsSymmetricAlgorithm(t *testing.T) {
	provider := stdcrypto.New()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	_, err = ImportRSAPublicKey(context.Background(), provider, A128KW, rsaJWK(t, priv, false))
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}
