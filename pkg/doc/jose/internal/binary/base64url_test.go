/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package binary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, in := range [][]byte{
		nil,
		[]byte{},
		[]byte("a"),
		[]byte("hello world"),
		{0x00, 0x01, 0xff, 0xfe},
	} {
		encoded := Encode(in)
		require.NotContains(t, encoded, "=")

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, in, decoded)
	}
}

func TestDecodeAcceptsStandardAlphabetSubstitution(t *testing.T) {
	decoded, err := Decode("Pz8/")
	require.NoError(t, err)
	require.Equal(t, []byte{0x3f, 0x3f, 0x3f}, decoded)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode("not valid base64url!!")
	require.ErrorIs(t, err, ErrInvalidEncoding)
}
