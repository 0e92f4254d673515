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

// cekParams is the split view of a content encryption key for a composite
// algorithm: the leading bytes authenticate, the trailing bytes encrypt,
// per RFC 7518 §5.2.2.1.
type cekParams struct {
	macKey []byte
	encKey []byte
}

// placeholderAlgFor names the AlgorithmID passed to CryptoProvider.ImportRaw
// and CryptoProvider.UnwrapRaw when generating or unwrapping a raw CEK of
// the given total length, since a composite CEK is not itself one
// primitive's native key but two concatenated keys of possibly differing
// algorithms. The placeholder only ever selects a key length; it is never
// used to perform an encrypt, decrypt, or sign call.
func placeholderAlgFor(totalBytes int) (cryptoapi.AlgorithmID, error) {
	switch totalBytes {
	case 16:
		return cryptoapi.AESCBC128, nil
	case 32:
		return cryptoapi.AESCBC256, nil
	case 64:
		return cryptoapi.HMACSHA256, nil
	default:
		return "", fmt.Errorf("%w: no placeholder algorithm for a %d-byte CEK", ErrInternalInvariant, totalBytes)
	}
}

// generateCEK produces a fresh content encryption key for spec. For an
// AEAD algorithm the provider generates the exact content key directly,
// non-extractable: no raw copy is ever materialized, since nothing needs
// to split it. For a composite algorithm the CEK cannot be generated as
// one native key (it is two concatenated keys of different algorithms),
// so this imports spec.CEKBytes of randomness under a placeholder algorithm
// and keeps it extractable so splitCEK can divide it later.
//
// The CEK is generated once per Encrypt call and is never reused across
// messages.
func generateCEK(ctx context.Context, provider cryptoapi.CryptoProvider, spec ContentAlgSpec) (
	cryptoapi.Key, []byte, error) {
	usage := cryptoapi.UsageEncrypt.With(cryptoapi.UsageDecrypt)

	if !spec.Composite() {
		key, err := provider.GenerateKey(ctx, spec.ProviderAlg, false, usage)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: generating CEK: %v", ErrCryptoPrimitiveFailure, err)
		}

		return key, nil, nil
	}

	raw, err := provider.Random(ctx, spec.CEKBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: generating CEK: %v", ErrCryptoPrimitiveFailure, err)
	}

	if len(raw) != spec.CEKBytes {
		return nil, nil, fmt.Errorf("%w: provider returned %d random bytes, wanted %d",
			ErrInternalInvariant, len(raw), spec.CEKBytes)
	}

	alg, err := placeholderAlgFor(spec.CEKBytes)
	if err != nil {
		return nil, nil, err
	}

	usage = usage.With(cryptoapi.UsageSign).With(cryptoapi.UsageVerify)

	key, err := provider.ImportRaw(ctx, raw, alg, true, usage)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: importing generated CEK: %v", ErrCryptoPrimitiveFailure, err)
	}

	return key, raw, nil
}

// splitCEK divides raw CEK bytes into a MAC key and an encryption key per a
// composite MACParams spec. raw is zeroed after the split so the
// un-partitioned copy does not linger in memory past this call.
func splitCEK(raw []byte, mac MACParams, totalBytes int) (cekParams, error) {
	if len(raw) != totalBytes {
		return cekParams{}, fmt.Errorf("%w: CEK is %d bytes, spec wants %d", ErrInternalInvariant, len(raw), totalBytes)
	}

	encBytes := totalBytes - mac.KeyBytes
	if encBytes <= 0 {
		return cekParams{}, fmt.Errorf("%w: MAC key length %d leaves no room for an encryption key in %d bytes",
			ErrInternalInvariant, mac.KeyBytes, totalBytes)
	}

	macKey := make([]byte, mac.KeyBytes)
	encKey := make([]byte, encBytes)

	copy(macKey, raw[:mac.KeyBytes])
	copy(encKey, raw[mac.KeyBytes:])

	for i := range raw {
		raw[i] = 0
	}

	return cekParams{macKey: macKey, encKey: encKey}, nil
}
