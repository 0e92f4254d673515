/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package binary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstantTimeCompare(t *testing.T) {
	require.True(t, ConstantTimeCompare([]byte("abc"), []byte("abc")))
	require.False(t, ConstantTimeCompare([]byte("abc"), []byte("abd")))
	require.False(t, ConstantTimeCompare([]byte("abc"), []byte("ab")))
	require.True(t, ConstantTimeCompare(nil, nil))
	require.False(t, ConstantTimeCompare([]byte{}, []byte("a")))
}
