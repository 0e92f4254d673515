/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package stdcrypto

import "errors"

// ErrInvalidKey is returned when a Key value or JWK map passed into this
// provider cannot supply the material an operation needs.
var ErrInvalidKey = errors.New("stdcrypto: invalid key")

// ErrNotExtractable is returned by ExportRaw when called on a key that was
// imported or generated with extractable set to false.
var ErrNotExtractable = errors.New("stdcrypto: key is not extractable")
