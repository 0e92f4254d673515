/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jose

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jwecore/jwe/pkg/doc/jose/internal/binary"
	cryptoapi "github.com/jwecore/jwe/spi/crypto"
)

// Encrypt produces a JWE compact serialization of plaintext for
// recipientKey, which must be shaped the way c's key algorithm expects (an
// RSA public key for RSA-OAEP/RSA-OAEP-256, a shared symmetric key for
// A128KW/A256KW).
//
// A fresh CEK and IV are generated for every call; nothing is reused
// across messages. CEK wrapping and content encryption depend on the CEK
// but not on each other, so this method runs them concurrently and joins
// the results into the five compact segments.
func (c *Codec) Encrypt(ctx context.Context, recipientKey cryptoapi.Key, plaintext []byte) (string, error) {
	ctx = ensureContext(ctx)

	keySpec, err := LookupKeyAlgorithm(c.keyAlg)
	if err != nil {
		return "", err
	}

	contentSpec, err := LookupContentAlgorithm(c.contentAlg)
	if err != nil {
		return "", err
	}

	cekKey, cekRaw, err := generateCEK(ctx, c.provider, contentSpec)
	if err != nil {
		return "", err
	}

	iv, err := c.provider.Random(ctx, contentSpec.IVBytes)
	if err != nil {
		return "", fmt.Errorf("%w: generating IV: %v", ErrCryptoPrimitiveFailure, err)
	}

	header := buildHeader(c.keyAlg, c.contentAlg)
	protected := binary.Encode(header)
	aad := []byte(protected)

	var (
		encryptedKey []byte
		sealed       contentSealed
	)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		wrapped, werr := wrapCEK(gctx, c.provider, keySpec, cekKey, recipientKey)
		if werr != nil {
			return werr
		}

		encryptedKey = wrapped

		return nil
	})

	group.Go(func() error {
		s, serr := encryptContent(gctx, c.provider, contentSpec, cekKey, cekRaw, iv, aad, plaintext)
		if serr != nil {
			return serr
		}

		sealed = s

		return nil
	})

	if err := group.Wait(); err != nil {
		return "", err
	}

	msg := compactMessage{
		protected:    protected,
		encryptedKey: binary.Encode(encryptedKey),
		iv:           binary.Encode(iv),
		ciphertext:   binary.Encode(sealed.ciphertext),
		tag:          binary.Encode(sealed.tag),
	}

	return joinCompact(msg), nil
}
