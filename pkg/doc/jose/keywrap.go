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

// wrapCEK produces the encrypted key segment: cek wrapped under
// recipientKey according to spec. For the asymmetric algorithms
// (RSA-OAEP, RSA-OAEP-256) this is key encryption of the raw CEK bytes
// under an RSA public key; for the symmetric algorithms (A128KW, A256KW)
// it is RFC 3394 AES Key Wrap under a shared key. Both are expressed
// through the same CryptoProvider.WrapRaw call; the distinction is carried
// entirely in spec.ProviderAlg and lives inside the provider.
func wrapCEK(ctx context.Context, provider cryptoapi.CryptoProvider, spec KeyAlgSpec,
	cek cryptoapi.Key, recipientKey cryptoapi.Key) ([]byte, error) {
	wrapped, err := provider.WrapRaw(ctx, cek, recipientKey, spec.ProviderAlg)
	if err != nil {
		return nil, fmt.Errorf("%w: wrapping CEK: %v", ErrCryptoPrimitiveFailure, err)
	}

	return wrapped, nil
}

// unwrapCEK reverses wrapCEK. For an AEAD content algorithm the unwrapped
// CEK is kept non-extractable and used directly; no raw copy is ever
// produced. For a composite algorithm it must be re-imported as
// extractable so splitCEK can divide it, per spec.md §4.4.
func unwrapCEK(ctx context.Context, provider cryptoapi.CryptoProvider, spec KeyAlgSpec, contentSpec ContentAlgSpec,
	wrapped []byte, recipientKey cryptoapi.Key) (cryptoapi.Key, []byte, error) {
	usage := cryptoapi.UsageEncrypt.With(cryptoapi.UsageDecrypt)

	if !contentSpec.Composite() {
		key, err := provider.UnwrapRaw(ctx, wrapped, recipientKey, spec.ProviderAlg, contentSpec.ProviderAlg, false, usage)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: unwrapping CEK: %v", ErrCryptoPrimitiveFailure, err)
		}

		return key, nil, nil
	}

	usage = usage.With(cryptoapi.UsageSign).With(cryptoapi.UsageVerify)

	placeholder, err := placeholderAlgFor(contentSpec.CEKBytes)
	if err != nil {
		return nil, nil, err
	}

	key, err := provider.UnwrapRaw(ctx, wrapped, recipientKey, spec.ProviderAlg, placeholder, true, usage)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: unwrapping CEK: %v", ErrCryptoPrimitiveFailure, err)
	}

	raw, err := provider.ExportRaw(ctx, key)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: exporting unwrapped CEK: %v", ErrCryptoPrimitiveFailure, err)
	}

	if len(raw) != contentSpec.CEKBytes {
		return nil, nil, fmt.Errorf("%w: unwrapped CEK is %d bytes, %q wants %d",
			ErrInternalInvariant, len(raw), contentSpec.JWEName, contentSpec.CEKBytes)
	}

	return key, raw, nil
}
