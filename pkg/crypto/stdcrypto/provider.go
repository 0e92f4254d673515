/*
Copyright the jwecore authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package stdcrypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec // RSA-OAEP-SHA1 is a registered JWE algorithm, not used for its collision resistance
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	josecipher "github.com/go-jose/go-jose/v3/cipher"

	"github.com/jwecore/jwe/pkg/doc/jose/jwk"
	cryptoapi "github.com/jwecore/jwe/spi/crypto"
)

// Provider is a cryptoapi.CryptoProvider backed entirely by the standard
// library, plus go-jose's AES Key Wrap implementation for A128KW/A256KW.
type Provider struct{}

// New returns a ready-to-use Provider. Provider carries no state, so every
// call returns the same value; New exists so callers construct it the same
// way they would construct any other provider.
func New() *Provider {
	return &Provider{}
}

// Random returns n cryptographically random bytes from crypto/rand.
func (p *Provider) Random(_ context.Context, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("stdcrypto: reading random bytes: %w", err)
	}

	return b, nil
}

// ImportJWK builds a Key from a loosely-typed RSA JWK map. Only RSA
// public/private keys are supported. A JWK carrying "d" is imported as a
// private key and must supply the full private parameter set; any other
// JWK is imported as a public key from n and e alone.
func (p *Provider) ImportJWK(_ context.Context, raw map[string]interface{}, alg cryptoapi.AlgorithmID,
	usage cryptoapi.KeyUsage) (cryptoapi.Key, error) {
	if alg != cryptoapi.RSAOAEPSHA1 && alg != cryptoapi.RSAOAEPSHA256 {
		return nil, fmt.Errorf("%w: ImportJWK only supports RSA-OAEP algorithms, got %q", ErrInvalidKey, alg)
	}

	if _, hasD := raw["d"]; hasD {
		priv, err := jwk.NormalizeRSAPrivate(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}

		return &stdKey{alg: alg, usage: usage, extractable: false, rsaPriv: priv.PrivateKey()}, nil
	}

	pub, err := jwk.NormalizeRSAPublic(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return &stdKey{alg: alg, usage: usage, extractable: false, rsaPub: pub.PublicKey()}, nil
}

// GenerateKey generates fresh key material for alg: an RSA key pair for
// the RSA-OAEP algorithms, or random symmetric bytes otherwise.
func (p *Provider) GenerateKey(ctx context.Context, alg cryptoapi.AlgorithmID, extractable bool,
	usage cryptoapi.KeyUsage) (cryptoapi.Key, error) {
	if alg == cryptoapi.RSAOAEPSHA1 || alg == cryptoapi.RSAOAEPSHA256 {
		priv, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			return nil, fmt.Errorf("stdcrypto: generating RSA key: %w", err)
		}

		return &stdKey{alg: alg, usage: usage, extractable: extractable, rsaPriv: priv}, nil
	}

	n, err := symmetricKeyBytes(alg)
	if err != nil {
		return nil, err
	}

	raw, err := p.Random(ctx, n)
	if err != nil {
		return nil, err
	}

	return &stdKey{alg: alg, usage: usage, extractable: extractable, raw: raw}, nil
}

// ExportRaw returns the raw symmetric bytes behind key, failing if key was
// imported or generated as non-extractable, or if key holds RSA material
// instead of symmetric bytes.
func (p *Provider) ExportRaw(_ context.Context, key cryptoapi.Key) ([]byte, error) {
	k, err := asStdKey(key)
	if err != nil {
		return nil, err
	}

	if !k.extractable {
		return nil, fmt.Errorf("%w", ErrNotExtractable)
	}

	if k.raw == nil {
		return nil, fmt.Errorf("%w: key does not hold symmetric bytes", ErrInvalidKey)
	}

	out := make([]byte, len(k.raw))
	copy(out, k.raw)

	return out, nil
}

// ImportRaw wraps raw symmetric bytes as a Key for alg.
func (p *Provider) ImportRaw(_ context.Context, raw []byte, alg cryptoapi.AlgorithmID, extractable bool,
	usage cryptoapi.KeyUsage) (cryptoapi.Key, error) {
	stored := make([]byte, len(raw))
	copy(stored, raw)

	return &stdKey{alg: alg, usage: usage, extractable: extractable, raw: stored}, nil
}

// WrapRaw wraps key under wrappingKey using wrapAlg: RSA-OAEP encryption
// of key's raw bytes for the asymmetric algorithms, RFC 3394 AES Key Wrap
// for A128KW/A256KW.
func (p *Provider) WrapRaw(_ context.Context, key, wrappingKey cryptoapi.Key,
	wrapAlg cryptoapi.AlgorithmID) ([]byte, error) {
	cek, err := asStdKey(key)
	if err != nil {
		return nil, err
	}

	wk, err := asStdKey(wrappingKey)
	if err != nil {
		return nil, err
	}

	switch wrapAlg {
	case cryptoapi.RSAOAEPSHA1, cryptoapi.RSAOAEPSHA256:
		pub := wk.rsaPub
		if pub == nil && wk.rsaPriv != nil {
			pub = &wk.rsaPriv.PublicKey
		}

		if pub == nil {
			return nil, fmt.Errorf("%w: RSA-OAEP wrap needs an RSA public key", ErrInvalidKey)
		}

		return rsa.EncryptOAEP(oaepHash(wrapAlg), rand.Reader, pub, cek.raw, nil)
	case cryptoapi.AESKW128, cryptoapi.AESKW256:
		if wk.raw == nil {
			return nil, fmt.Errorf("%w: AES key wrap needs symmetric key bytes", ErrInvalidKey)
		}

		block, err := aes.NewCipher(wk.raw)
		if err != nil {
			return nil, fmt.Errorf("stdcrypto: building AES-KW cipher: %w", err)
		}

		return josecipher.KeyWrap(block, cek.raw)
	default:
		return nil, fmt.Errorf("stdcrypto: unsupported wrap algorithm %q", wrapAlg)
	}
}

// UnwrapRaw reverses WrapRaw, recovering a Key for innerAlg.
func (p *Provider) UnwrapRaw(_ context.Context, wrapped []byte, unwrappingKey cryptoapi.Key,
	wrapAlg, innerAlg cryptoapi.AlgorithmID, extractable bool, usage cryptoapi.KeyUsage) (cryptoapi.Key, error) {
	uk, err := asStdKey(unwrappingKey)
	if err != nil {
		return nil, err
	}

	var raw []byte

	switch wrapAlg {
	case cryptoapi.RSAOAEPSHA1, cryptoapi.RSAOAEPSHA256:
		if uk.rsaPriv == nil {
			return nil, fmt.Errorf("%w: RSA-OAEP unwrap needs an RSA private key", ErrInvalidKey)
		}

		raw, err = rsa.DecryptOAEP(oaepHash(wrapAlg), rand.Reader, uk.rsaPriv, wrapped, nil)
		if err != nil {
			return nil, fmt.Errorf("stdcrypto: RSA-OAEP unwrap: %w", err)
		}
	case cryptoapi.AESKW128, cryptoapi.AESKW256:
		if uk.raw == nil {
			return nil, fmt.Errorf("%w: AES key unwrap needs symmetric key bytes", ErrInvalidKey)
		}

		block, berr := aes.NewCipher(uk.raw)
		if berr != nil {
			return nil, fmt.Errorf("stdcrypto: building AES-KW cipher: %w", berr)
		}

		raw, err = josecipher.KeyUnwrap(block, wrapped)
		if err != nil {
			return nil, fmt.Errorf("stdcrypto: AES key unwrap: %w", err)
		}
	default:
		return nil, fmt.Errorf("stdcrypto: unsupported unwrap algorithm %q", wrapAlg)
	}

	return &stdKey{alg: innerAlg, usage: usage, extractable: extractable, raw: raw}, nil
}

// Encrypt seals plaintext under key. AES-GCM algorithms return
// ciphertext‖tag; AES-CBC algorithms PKCS#7-pad plaintext and return the
// raw ciphertext blocks with no tag, since composite authentication is the
// caller's responsibility.
func (p *Provider) Encrypt(_ context.Context, params cryptoapi.EncryptParams, key cryptoapi.Key,
	plaintext []byte) ([]byte, error) {
	k, err := asStdKey(key)
	if err != nil {
		return nil, err
	}

	if k.raw == nil {
		return nil, fmt.Errorf("%w: content encryption needs symmetric key bytes", ErrInvalidKey)
	}

	switch k.alg {
	case cryptoapi.AESGCM128, cryptoapi.AESGCM256:
		gcm, err := newGCM(k.raw)
		if err != nil {
			return nil, err
		}

		return gcm.Seal(nil, params.IV, plaintext, params.AAD), nil
	case cryptoapi.AESCBC128, cryptoapi.AESCBC256:
		block, err := aes.NewCipher(k.raw)
		if err != nil {
			return nil, fmt.Errorf("stdcrypto: building AES-CBC cipher: %w", err)
		}

		padded := pkcs7Pad(plaintext, block.BlockSize())
		out := make([]byte, len(padded))
		cipher.NewCBCEncrypter(block, params.IV).CryptBlocks(out, padded)

		return out, nil
	default:
		return nil, fmt.Errorf("stdcrypto: unsupported content algorithm %q", k.alg)
	}
}

// Decrypt reverses Encrypt.
func (p *Provider) Decrypt(_ context.Context, params cryptoapi.EncryptParams, key cryptoapi.Key,
	ciphertextWithTag []byte) ([]byte, error) {
	k, err := asStdKey(key)
	if err != nil {
		return nil, err
	}

	if k.raw == nil {
		return nil, fmt.Errorf("%w: content decryption needs symmetric key bytes", ErrInvalidKey)
	}

	switch k.alg {
	case cryptoapi.AESGCM128, cryptoapi.AESGCM256:
		gcm, err := newGCM(k.raw)
		if err != nil {
			return nil, err
		}

		return gcm.Open(nil, params.IV, ciphertextWithTag, params.AAD)
	case cryptoapi.AESCBC128, cryptoapi.AESCBC256:
		block, err := aes.NewCipher(k.raw)
		if err != nil {
			return nil, fmt.Errorf("stdcrypto: building AES-CBC cipher: %w", err)
		}

		if len(ciphertextWithTag)%block.BlockSize() != 0 {
			return nil, fmt.Errorf("stdcrypto: ciphertext is not a multiple of the block size")
		}

		padded := make([]byte, len(ciphertextWithTag))
		cipher.NewCBCDecrypter(block, params.IV).CryptBlocks(padded, ciphertextWithTag)

		return pkcs7Unpad(padded, block.BlockSize())
	default:
		return nil, fmt.Errorf("stdcrypto: unsupported content algorithm %q", k.alg)
	}
}

// Sign computes an HMAC over data under key using hmacAlg to select the
// hash function.
func (p *Provider) Sign(_ context.Context, hmacAlg cryptoapi.AlgorithmID, key cryptoapi.Key,
	data []byte) ([]byte, error) {
	k, err := asStdKey(key)
	if err != nil {
		return nil, err
	}

	if k.raw == nil {
		return nil, fmt.Errorf("%w: HMAC needs symmetric key bytes", ErrInvalidKey)
	}

	h, err := hmacHash(hmacAlg)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(h, k.raw)
	mac.Write(data) //nolint:errcheck // hash.Hash.Write never returns a non-nil error

	return mac.Sum(nil), nil
}

func symmetricKeyBytes(alg cryptoapi.AlgorithmID) (int, error) {
	switch alg {
	case cryptoapi.AESKW128, cryptoapi.AESCBC128, cryptoapi.AESGCM128:
		return 16, nil
	case cryptoapi.AESKW256, cryptoapi.AESCBC256, cryptoapi.AESGCM256:
		return 32, nil
	case cryptoapi.HMACSHA256:
		return 32, nil
	case cryptoapi.HMACSHA384:
		return 48, nil
	case cryptoapi.HMACSHA512:
		return 64, nil
	default:
		return 0, fmt.Errorf("stdcrypto: no default key length for algorithm %q", alg)
	}
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("stdcrypto: building AES-GCM cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("stdcrypto: building AES-GCM cipher: %w", err)
	}

	return gcm, nil
}

func oaepHash(wrapAlg cryptoapi.AlgorithmID) hash.Hash {
	if wrapAlg == cryptoapi.RSAOAEPSHA256 {
		return sha256.New()
	}

	return sha1.New() //nolint:gosec // RSA-OAEP (plain) is defined over SHA-1 by RFC 7518
}

func hmacHash(alg cryptoapi.AlgorithmID) (func() hash.Hash, error) {
	switch alg {
	case cryptoapi.HMACSHA256:
		return sha256.New, nil
	case cryptoapi.HMACSHA384:
		return sha512.New384, nil
	case cryptoapi.HMACSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("stdcrypto: unsupported HMAC algorithm %q", alg)
	}
}
