/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package binary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAADLength(t *testing.T) {
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, AADLength(nil))
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 8}, AADLength([]byte{0x01}))
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 16}, AADLength([]byte{0x01, 0x02}))
}

func TestStripLeadingZeros(t *testing.T) {
	require.Equal(t, []byte{0x01, 0x02}, StripLeadingZeros([]byte{0x00, 0x01, 0x02}))
	require.Equal(t, []byte{0x01}, StripLeadingZeros([]byte{0x01}))
	require.Equal(t, []byte{0x00}, StripLeadingZeros([]byte{0x00, 0x00, 0x00}))
}
