/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jose

import (
	"context"
	"fmt"

	cryptoapi "github.com/jwecore/jwe/spi/crypto"
)

// ImportRSAPublicKey imports an RSA public JWK for use as the recipient
// key of an RSA-OAEP or RSA-OAEP-256 Codec. The resulting Key is marked
// non-extractable and restricted to wrap usage: a public key only ever
// wraps a CEK, never unwraps one.
func ImportRSAPublicKey(ctx context.Context, provider cryptoapi.CryptoProvider, keyAlg KeyAlgorithm,
	jwk map[string]interface{}) (cryptoapi.Key, error) {
	spec, err := lookupAsymmetricKeyAlgorithm(keyAlg)
	if err != nil {
		return nil, err
	}

	key, err := provider.ImportJWK(ensureContext(ctx), jwk, spec.ProviderAlg, cryptoapi.UsageWrap)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}

	return key, nil
}

// ImportRSAPrivateKey imports an RSA private JWK for use as the recipient
// key of an RSA-OAEP or RSA-OAEP-256 Codec. The resulting Key is marked
// non-extractable and restricted to unwrap usage.
func ImportRSAPrivateKey(ctx context.Context, provider cryptoapi.CryptoProvider, keyAlg KeyAlgorithm,
	jwk map[string]interface{}) (cryptoapi.Key, error) {
	spec, err := lookupAsymmetricKeyAlgorithm(keyAlg)
	if err != nil {
		return nil, err
	}

	key, err := provider.ImportJWK(ensureContext(ctx), jwk, spec.ProviderAlg, cryptoapi.UsageUnwrap)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}

	return key, nil
}

func lookupAsymmetricKeyAlgorithm(keyAlg KeyAlgorithm) (KeyAlgSpec, error) {
	spec, err := LookupKeyAlgorithm(keyAlg)
	if err != nil {
		return KeyAlgSpec{}, err
	}

	if !spec.Asymmetric {
		return KeyAlgSpec{}, fmt.Errorf("%w: %q is not an RSA JWK algorithm", ErrUnsupportedAlgorithm, keyAlg)
	}

	return spec, nil
}
