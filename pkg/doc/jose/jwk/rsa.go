/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jwk normalizes RSA key material expressed as a loosely-typed JWK
// (map[string]interface{}) into the byte-oriented form RFC 7518 §6.3
// expects, and builds *rsa.PublicKey / *rsa.PrivateKey from the result.
//
// A RSA JWK parameter may arrive as a base64url string, a colon-delimited
// hex string, or (only for "e") a native integer — callers are not expected
// to have normalized their input before calling in.
package jwk

import (
	"crypto/rsa"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/jwecore/jwe/pkg/doc/jose/internal/binary"
)

// rsaPublicParams names the required parameters of a public RSA JWK.
var rsaPublicParams = []string{"n", "e"}

// rsaPrivateParams names the required parameters of a private RSA JWK.
var rsaPrivateParams = []string{"n", "e", "d", "p", "q", "dp", "dq", "qi"}

// RSAPublicParams is the normalized byte form of a public RSA JWK.
type RSAPublicParams struct {
	N []byte
	E []byte
}

// RSAPrivateParams is the normalized byte form of a private RSA JWK.
type RSAPrivateParams struct {
	RSAPublicParams
	D  []byte
	P  []byte
	Q  []byte
	DP []byte
	DQ []byte
	QI []byte
}

// NormalizeRSAPublic validates and normalizes the n, e parameters of raw.
func NormalizeRSAPublic(raw map[string]interface{}) (*RSAPublicParams, error) {
	if err := checkKtyAlg(raw); err != nil {
		return nil, err
	}

	values, err := decodeParams(raw, rsaPublicParams)
	if err != nil {
		return nil, err
	}

	return &RSAPublicParams{N: values["n"], E: values["e"]}, nil
}

// NormalizeRSAPrivate validates and normalizes the full private-key
// parameter set of raw.
func NormalizeRSAPrivate(raw map[string]interface{}) (*RSAPrivateParams, error) {
	if err := checkKtyAlg(raw); err != nil {
		return nil, err
	}

	values, err := decodeParams(raw, rsaPrivateParams)
	if err != nil {
		return nil, err
	}

	return &RSAPrivateParams{
		RSAPublicParams: RSAPublicParams{N: values["n"], E: values["e"]},
		D:               values["d"],
		P:               values["p"],
		Q:               values["q"],
		DP:              values["dp"],
		DQ:              values["dq"],
		QI:              values["qi"],
	}, nil
}

// PublicKey builds an *rsa.PublicKey from normalized parameters.
func (p *RSAPublicParams) PublicKey() *rsa.PublicKey {
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(p.N),
		E: int(new(big.Int).SetBytes(p.E).Int64()),
	}
}

// PrivateKey builds an *rsa.PrivateKey from normalized parameters. The CRT
// values are recomputed from p and q by Precompute; the JWK's dp, dq and
// qi are not used. rsa.PrivateKey.Validate is left to the caller.
func (p *RSAPrivateParams) PrivateKey() *rsa.PrivateKey {
	key := &rsa.PrivateKey{
		PublicKey: *p.PublicKey(),
		D:         new(big.Int).SetBytes(p.D),
		Primes: []*big.Int{
			new(big.Int).SetBytes(p.P),
			new(big.Int).SetBytes(p.Q),
		},
	}

	key.Precompute()

	return key
}

func checkKtyAlg(raw map[string]interface{}) error {
	if v, ok := raw["kty"]; ok {
		s, ok := v.(string)
		if !ok || s != "RSA" {
			return fmt.Errorf("%w: kty must be \"RSA\"", ErrInvalidKey)
		}
	}

	if v, ok := raw["alg"]; ok {
		s, ok := v.(string)
		if !ok || s != "RSA-OAEP" {
			return fmt.Errorf("%w: alg must be \"RSA-OAEP\"", ErrInvalidKey)
		}
	}

	return nil
}

func decodeParams(raw map[string]interface{}, names []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(names))

	for _, name := range names {
		b, err := decodeParam(raw, name)
		if err != nil {
			return nil, err
		}

		out[name] = b
	}

	return out, nil
}

func decodeParam(raw map[string]interface{}, name string) ([]byte, error) {
	v, ok := raw[name]
	if !ok {
		return nil, fmt.Errorf("%w: missing parameter %q", ErrInvalidKey, name)
	}

	switch value := v.(type) {
	case string:
		if strings.Contains(value, ":") {
			return decodeColonHex(value)
		}

		b, err := binary.Decode(value)
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %q is not valid base64url: %v", ErrInvalidKey, name, err)
		}

		return b, nil
	case float64:
		if name != "e" {
			return nil, fmt.Errorf("%w: parameter %q may not be numeric", ErrInvalidKey, name)
		}

		return big.NewInt(int64(value)).Bytes(), nil
	case int:
		if name != "e" {
			return nil, fmt.Errorf("%w: parameter %q may not be numeric", ErrInvalidKey, name)
		}

		return big.NewInt(int64(value)).Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: parameter %q has unsupported type %T", ErrInvalidKey, name, v)
	}
}

func decodeColonHex(s string) ([]byte, error) {
	parts := strings.Split(s, ":")
	out := make([]byte, len(parts))

	for i, part := range parts {
		n, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid colon-hex byte %q: %v", ErrInvalidKey, part, err)
		}

		out[i] = byte(n)
	}

	return out, nil
}
