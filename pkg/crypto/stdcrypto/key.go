/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package stdcrypto

import (
	"crypto/rsa"
	"fmt"

	cryptoapi "github.com/jwecore/jwe/spi/crypto"
)

// stdKey is the concrete cryptoapi.Key this provider produces. Exactly one
// of raw, rsaPub, rsaPriv is set.
type stdKey struct {
	alg         cryptoapi.AlgorithmID
	usage       cryptoapi.KeyUsage
	extractable bool

	raw     []byte
	rsaPub  *rsa.PublicKey
	rsaPriv *rsa.PrivateKey
}

func (k *stdKey) Usage() cryptoapi.KeyUsage { return k.usage }
func (k *stdKey) Extractable() bool         { return k.extractable }

// asStdKey recovers the concrete type behind a cryptoapi.Key, rejecting
// keys this provider did not create itself.
func asStdKey(key cryptoapi.Key) (*stdKey, error) {
	k, ok := key.(*stdKey)
	if !ok {
		return nil, fmt.Errorf("%w: key was not produced by this provider", ErrInvalidKey)
	}

	return k, nil
}
