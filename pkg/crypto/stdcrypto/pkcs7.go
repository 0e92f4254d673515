/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package stdcrypto

import "fmt"

// pkcs7Pad appends a PKCS#7 padding block to data, per RFC 5652 §6.3.
// blockSize must be in [1, 255].
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)

	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}

	return padded
}

// pkcs7Unpad strips and validates a PKCS#7 padding block. Every padding
// byte must equal the padding length, and the padding length must be in
// [1, blockSize]; any other shape is rejected rather than silently
// truncated, since a forged pad is an attacker's first lever in a padding
// oracle.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("stdcrypto: padded data is not a multiple of the block size")
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, fmt.Errorf("stdcrypto: invalid PKCS#7 padding length")
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("stdcrypto: invalid PKCS#7 padding bytes")
		}
	}

	return data[:len(data)-padLen], nil
}
