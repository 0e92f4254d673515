/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package binary

import "encoding/binary"

// AADLength encodes the bit-length of aad as a 64-bit big-endian integer,
// per RFC 7518 §5.2.2.1, for use as the AL suffix of a CBC-HMAC MAC input.
func AADLength(aad []byte) []byte {
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, uint64(len(aad))*8) //nolint:gosec // len(aad) fits well within uint64 bits

	return out
}

// StripLeadingZeros drops leading 0x00 bytes from b, as required before
// base64url-encoding an RSA integer parameter into a JWK field. A slice of
// all zero bytes is reduced to a single zero byte, never to empty.
func StripLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b)-1 && b[i] == 0 {
		i++
	}

	return b[i:]
}
