/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jose

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwecore/jwe/pkg/doc/jose/internal/binary"
	cryptoapi "github.com/jwecore/jwe/spi/crypto"
)

// numCompactSegments is the number of dot-separated segments a JWE compact
// serialization always carries, per RFC 7516 §3.1.
const numCompactSegments = 5

// Codec encrypts and decrypts JWE Compact Serialization messages for one
// fixed (key algorithm, content algorithm) pair. A Codec is safe for
// concurrent use; it holds no mutable state of its own.
type Codec struct {
	provider   cryptoapi.CryptoProvider
	keyAlg     KeyAlgorithm
	contentAlg ContentAlgorithm
}

// NewCodec builds a Codec that wraps CEKs with keyAlg and encrypts content
// with contentAlg, delegating every primitive operation to provider.
// NewCodec fails fast if either algorithm is unregistered.
func NewCodec(provider cryptoapi.CryptoProvider, keyAlg KeyAlgorithm, contentAlg ContentAlgorithm) (*Codec, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: provider is nil", ErrInternalInvariant)
	}

	if _, err := LookupKeyAlgorithm(keyAlg); err != nil {
		return nil, err
	}

	if _, err := LookupContentAlgorithm(contentAlg); err != nil {
		return nil, err
	}

	return &Codec{provider: provider, keyAlg: keyAlg, contentAlg: contentAlg}, nil
}

// compactMessage holds the five segments of a parsed JWE, still encoded.
type compactMessage struct {
	protected    string
	encryptedKey string
	iv           string
	ciphertext   string
	tag          string
}

// joinCompact assembles the five encoded segments into wire form.
func joinCompact(m compactMessage) string {
	return strings.Join([]string{m.protected, m.encryptedKey, m.iv, m.ciphertext, m.tag}, ".")
}

// splitCompact parses a JWE compact serialization into its five segments.
// Exactly five non-empty, dot-separated segments are required; any other
// shape is ErrMalformedInput, including the missing segments that RFC 7516
// would otherwise allow for certain algorithm combinations, which this
// package does not support.
func splitCompact(s string) (compactMessage, error) {
	parts := strings.Split(s, ".")

	if len(parts) != numCompactSegments {
		return compactMessage{}, fmt.Errorf("%w: expected %d segments, got %d",
			ErrMalformedInput, numCompactSegments, len(parts))
	}

	for i, p := range parts {
		if p == "" {
			return compactMessage{}, fmt.Errorf("%w: segment %d is empty", ErrMalformedInput, i)
		}
	}

	return compactMessage{
		protected:    parts[0],
		encryptedKey: parts[1],
		iv:           parts[2],
		ciphertext:   parts[3],
		tag:          parts[4],
	}, nil
}

// ExtractAlgorithms parses only the protected header segment of compact,
// returning the algorithm pair it declares without touching the encrypted
// key, IV, ciphertext, or tag. It lets a caller route a message to the
// right Codec, or reject one outright, before committing to a full Decrypt
// call.
func ExtractAlgorithms(compact string) (Headers, error) {
	msg, err := splitCompact(compact)
	if err != nil {
		return Headers{}, err
	}

	raw, err := decodeSegment("protected header", msg.protected)
	if err != nil {
		return Headers{}, err
	}

	alg, enc, err := parseHeader(raw)
	if err != nil {
		return Headers{}, err
	}

	return Headers{alg: alg, enc: enc}, nil
}

// decodeSegment base64url-decodes one compact segment, translating decode
// failures into ErrMalformedInput.
func decodeSegment(name, s string) ([]byte, error) {
	b, err := binary.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s segment is not valid base64url: %v", ErrMalformedInput, name, err)
	}

	return b, nil
}

// ensureContext returns ctx unchanged, or context.Background if ctx is nil.
// Exported orchestration methods accept a context but should never panic
// on a nil one.
func ensureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}

	return ctx
}
