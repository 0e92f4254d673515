/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwk

import "errors"

// ErrInvalidKey is returned when a JWK is missing a required RSA parameter,
// carries a parameter in an unrecognized shape, or declares a kty/alg that
// is not RSA/RSA-OAEP.
var ErrInvalidKey = errors.New("jwk: invalid RSA key")
