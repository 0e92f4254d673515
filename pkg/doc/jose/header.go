/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jose

import (
	"encoding/json"
	"fmt"
)

// rawHeader is the protected JWE header as it appears on the wire. Only
// alg, enc and crit are read; every other member is dropped on decode, so
// no member this package does not understand is ever silently acted on.
type rawHeader struct {
	Alg  KeyAlgorithm     `json:"alg"`
	Enc  ContentAlgorithm `json:"enc"`
	Crit []string         `json:"crit,omitempty"`
}

// buildHeader serializes the protected header for keyAlg/contentAlg with a
// stable alg-then-enc field order, matching the order every example in RFC
// 7516 Appendix A uses.
func buildHeader(keyAlg KeyAlgorithm, contentAlg ContentAlgorithm) []byte {
	// encoding/json does not let a struct literal control field order by
	// itself, but struct field declaration order is preserved by the
	// encoder, so rawHeader's declared order (alg, enc) is what is sent.
	h := rawHeader{Alg: keyAlg, Enc: contentAlg}

	raw, err := json.Marshal(h)
	if err != nil {
		panic(fmt.Sprintf("jose: header of known shape failed to marshal: %v", err))
	}

	return raw
}

// Headers is a typed view over a decoded protected header, for callers that
// want to inspect a message's algorithm pair without going through
// ExtractAlgorithms's string-only return.
type Headers struct {
	alg KeyAlgorithm
	enc ContentAlgorithm
}

// Algorithm returns the header's key algorithm.
func (h Headers) Algorithm() KeyAlgorithm {
	return h.alg
}

// Encryption returns the header's content encryption algorithm.
func (h Headers) Encryption() ContentAlgorithm {
	return h.enc
}

// parseHeader decodes a protected header and extracts the alg/enc pair.
// A crit member is rejected outright: this package implements no
// extensions, so any header that requires one cannot be processed safely.
func parseHeader(raw []byte) (KeyAlgorithm, ContentAlgorithm, error) {
	var h rawHeader

	if err := json.Unmarshal(raw, &h); err != nil {
		return "", "", fmt.Errorf("%w: header is not valid JSON: %v", ErrMalformedInput, err)
	}

	if len(h.Crit) > 0 {
		return "", "", fmt.Errorf("%w: crit header extensions are not supported", ErrMalformedInput)
	}

	if h.Alg == "" {
		return "", "", fmt.Errorf("%w: header is missing alg", ErrMalformedInput)
	}

	if h.Enc == "" {
		return "", "", fmt.Errorf("%w: header is missing enc", ErrMalformedInput)
	}

	return h.Alg, h.Enc, nil
}
