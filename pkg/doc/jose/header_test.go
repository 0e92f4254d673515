/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jwecore/jwe/pkg/doc/jose/internal/binary"
)

func TestBuildParseHeaderRoundTrip(t *testing.T) {
	raw := buildHeader(A256KW, A256GCM)

	alg, enc, err := parseHeader(raw)
	require.NoError(t, err)
	require.Equal(t, A256KW, alg)
	require.Equal(t, A256GCM, enc)
}

func TestParseHeaderRejectsCrit(t *testing.T) {
	_, _, err := parseHeader([]byte(`{"alg":"A128KW","enc":"A128CBC-HS256","crit":["exp"]}`))
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseHeaderRejectsMissingAlgOrEnc(t *testing.T) {
	_, _, err := parseHeader([]byte(`{"enc":"A128CBC-HS256"}`))
	require.ErrorIs(t, err, ErrMalformedInput)

	_, _, err = parseHeader([]byte(`{"alg":"A128KW"}`))
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseHeaderRejectsInvalidJSON(t *testing.T) {
	_, _, err := parseHeader([]byte(`not json`))
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestHeaderIgnoresUnknownMembers(t *testing.T) {
	alg, enc, err := parseHeader([]byte(`{"alg":"A128KW","enc":"A128CBC-HS256","kid":"abc","typ":"JWE"}`))
	require.NoError(t, err)
	require.Equal(t, A128KW, alg)
	require.Equal(t, A128CBCHS256, enc)
}

func TestExtractAlgorithmsReadsHeaderWithoutDecrypting(t *testing.T) {
	protected := binary.Encode(buildHeader(RSAOAEP256, A256GCM))
	compact := strings.Join([]string{protected, "x", "x", "x", "x"}, ".")

	headers, err := ExtractAlgorithms(compact)
	require.NoError(t, err)
	require.Equal(t, RSAOAEP256, headers.Algorithm())
	require.Equal(t, A256GCM, headers.Encryption())
}

func TestExtractAlgorithmsRejectsMalformedCompact(t *testing.T) {
	_, err := ExtractAlgorithms("not.enough.segments")
	require.ErrorIs(t, err, ErrMalformedInput)
}
