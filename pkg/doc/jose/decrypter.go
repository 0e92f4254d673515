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

// Decrypt reverses Encrypt. The protected header's alg/enc pair must match
// c's configured algorithms; a message produced for a different algorithm
// pair is rejected as ErrUnsupportedAlgorithm rather than silently
// reinterpreted.
//
// Unlike Encrypt, every step here runs strictly in sequence: the CEK must
// be unwrapped before the tag can be checked, and the tag must verify
// before any decryption is attempted. No plaintext is produced, even
// transiently, until the integrity check has passed.
func (c *Codec) Decrypt(ctx context.Context, recipientKey cryptoapi.Key, compact string) ([]byte, error) {
	ctx = ensureContext(ctx)

	msg, err := splitCompact(compact)
	if err != nil {
		return nil, err
	}

	headerRaw, err := decodeSegment("protected header", msg.protected)
	if err != nil {
		return nil, err
	}

	alg, enc, err := parseHeader(headerRaw)
	if err != nil {
		return nil, err
	}

	if alg != c.keyAlg || enc != c.contentAlg {
		return nil, fmt.Errorf("%w: message uses alg=%q enc=%q, codec is configured for alg=%q enc=%q",
			ErrUnsupportedAlgorithm, alg, enc, c.keyAlg, c.contentAlg)
	}

	keySpec, err := LookupKeyAlgorithm(c.keyAlg)
	if err != nil {
		return nil, err
	}

	contentSpec, err := LookupContentAlgorithm(c.contentAlg)
	if err != nil {
		return nil, err
	}

	encryptedKey, err := decodeSegment("encrypted key", msg.encryptedKey)
	if err != nil {
		return nil, err
	}

	iv, err := decodeSegment("IV", msg.iv)
	if err != nil {
		return nil, err
	}

	ciphertext, err := decodeSegment("ciphertext", msg.ciphertext)
	if err != nil {
		return nil, err
	}

	tag, err := decodeSegment("authentication tag", msg.tag)
	if err != nil {
		return nil, err
	}

	if len(iv) != contentSpec.IVBytes {
		return nil, fmt.Errorf("%w: IV is %d bytes, %q wants %d", ErrMalformedInput, len(iv), enc, contentSpec.IVBytes)
	}

	cekKey, cekRaw, err := unwrapCEK(ctx, c.provider, keySpec, contentSpec, encryptedKey, recipientKey)
	if err != nil {
		return nil, err
	}

	aad := []byte(msg.protected)

	return decryptContent(ctx, c.provider, contentSpec, cekKey, cekRaw, iv, aad, ciphertext, tag)
}
