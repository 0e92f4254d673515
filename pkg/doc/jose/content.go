/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jose

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jwecore/jwe/pkg/doc/jose/internal/binary"
	cryptoapi "github.com/jwecore/jwe/spi/crypto"
)

// aeadTagBytes is the authentication tag length every AEAD content
// algorithm registered in this package uses (GCM's standard 128-bit tag).
const aeadTagBytes = 16

// contentSealed is the result of one content-encryption call: the
// ciphertext and its authentication tag, kept separate because the AEAD and
// composite paths produce them differently but the compact codec always
// encodes them as two independent segments.
type contentSealed struct {
	ciphertext []byte
	tag        []byte
}

// encryptContent seals plaintext under cekKey using spec, authenticating
// aad (the ASCII protected header segment) alongside it. For an AEAD spec
// cekKey is the exact content key and is used directly; for a composite
// spec cekRaw (the still-whole CEK bytes) is split and this package
// computes the MAC itself over AAD‖IV‖ciphertext‖AL, per RFC 7518
// §5.2.2.1, using only the provider's raw Encrypt and Sign calls.
func encryptContent(ctx context.Context, provider cryptoapi.CryptoProvider, spec ContentAlgSpec,
	cekKey cryptoapi.Key, cekRaw []byte, iv, aad, plaintext []byte) (contentSealed, error) {
	if !spec.Composite() {
		sealed, err := provider.Encrypt(ctx, cryptoapi.EncryptParams{IV: iv, AAD: aad}, cekKey, plaintext)
		if err != nil {
			return contentSealed{}, fmt.Errorf("%w: %v", ErrCryptoPrimitiveFailure, err)
		}

		if len(sealed) < aeadTagBytes {
			return contentSealed{}, fmt.Errorf("%w: AEAD output shorter than its own tag", ErrInternalInvariant)
		}

		tagStart := len(sealed) - aeadTagBytes

		return contentSealed{ciphertext: sealed[:tagStart], tag: sealed[tagStart:]}, nil
	}

	parts, err := splitCEK(cekRaw, *spec.MAC, spec.CEKBytes)
	if err != nil {
		return contentSealed{}, err
	}

	encKey, err := provider.ImportRaw(ctx, parts.encKey, spec.ProviderAlg, false,
		cryptoapi.UsageEncrypt.With(cryptoapi.UsageDecrypt))
	if err != nil {
		return contentSealed{}, fmt.Errorf("%w: importing CBC key: %v", ErrCryptoPrimitiveFailure, err)
	}

	ciphertext, err := provider.Encrypt(ctx, cryptoapi.EncryptParams{IV: iv}, encKey, plaintext)
	if err != nil {
		return contentSealed{}, fmt.Errorf("%w: %v", ErrCryptoPrimitiveFailure, err)
	}

	macKey, err := provider.ImportRaw(ctx, parts.macKey, spec.MAC.ProviderAlg, false,
		cryptoapi.UsageSign.With(cryptoapi.UsageVerify))
	if err != nil {
		return contentSealed{}, fmt.Errorf("%w: importing MAC key: %v", ErrCryptoPrimitiveFailure, err)
	}

	full, err := provider.Sign(ctx, spec.MAC.ProviderAlg, macKey, macInput(aad, iv, ciphertext))
	if err != nil {
		return contentSealed{}, fmt.Errorf("%w: computing MAC: %v", ErrCryptoPrimitiveFailure, err)
	}

	return contentSealed{ciphertext: ciphertext, tag: full[:spec.MAC.TagBytes]}, nil
}

// decryptContent reverses encryptContent. For a composite spec the MAC is
// recomputed and compared in constant time before the ciphertext is
// decrypted at all; a mismatch returns ErrIntegrityFailure and no attempt
// is made to decrypt.
func decryptContent(ctx context.Context, provider cryptoapi.CryptoProvider, spec ContentAlgSpec,
	cekKey cryptoapi.Key, cekRaw []byte, iv, aad, ciphertext, tag []byte) ([]byte, error) {
	if !spec.Composite() {
		plaintext, err := provider.Decrypt(ctx, cryptoapi.EncryptParams{IV: iv, AAD: aad}, cekKey,
			append(append([]byte{}, ciphertext...), tag...))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIntegrityFailure, err)
		}

		return plaintext, nil
	}

	parts, err := splitCEK(cekRaw, *spec.MAC, spec.CEKBytes)
	if err != nil {
		return nil, err
	}

	macKey, err := provider.ImportRaw(ctx, parts.macKey, spec.MAC.ProviderAlg, false,
		cryptoapi.UsageSign.With(cryptoapi.UsageVerify))
	if err != nil {
		return nil, fmt.Errorf("%w: importing MAC key: %v", ErrCryptoPrimitiveFailure, err)
	}

	full, err := provider.Sign(ctx, spec.MAC.ProviderAlg, macKey, macInput(aad, iv, ciphertext))
	if err != nil {
		return nil, fmt.Errorf("%w: recomputing MAC: %v", ErrCryptoPrimitiveFailure, err)
	}

	if len(tag) != spec.MAC.TagBytes || !binary.ConstantTimeCompare(full[:spec.MAC.TagBytes], tag) {
		return nil, fmt.Errorf("%w: MAC tag mismatch", ErrIntegrityFailure)
	}

	encKey, err := provider.ImportRaw(ctx, parts.encKey, spec.ProviderAlg, false,
		cryptoapi.UsageEncrypt.With(cryptoapi.UsageDecrypt))
	if err != nil {
		return nil, fmt.Errorf("%w: importing CBC key: %v", ErrCryptoPrimitiveFailure, err)
	}

	plaintext, err := provider.Decrypt(ctx, cryptoapi.EncryptParams{IV: iv}, encKey, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCryptoPrimitiveFailure, err)
	}

	return plaintext, nil
}

// macInput assembles the MAC input for a composite content algorithm:
// AAD‖IV‖ciphertext‖AL, per RFC 7518 §5.2.2.1, where AL is the 64-bit
// big-endian bit length of AAD.
func macInput(aad, iv, ciphertext []byte) []byte {
	buf := bytes.NewBuffer(nil)
	buf.Write(aad)
	buf.Write(iv)
	buf.Write(ciphertext)
	buf.Write(binary.AADLength(aad))

	return buf.Bytes()
}
