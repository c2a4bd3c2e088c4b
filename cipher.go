package cascade

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// CipherSuite is a single AEAD layer: it seals plaintext into a
// self-framed blob (nonce ∥ ciphertext ∥ tag, with no external length
// fields) and opens that blob back into plaintext. Suites are stateless;
// a suite value carries only its fixed parameters, never key material.
type CipherSuite interface {
	// KeyLength is the exact raw key size this suite requires.
	KeyLength() int

	// Seal picks a fresh random nonce, encrypts plaintext under key, and
	// returns nonce ∥ ciphertext ∥ tag as one contiguous blob. Repeated
	// calls on identical inputs yield distinct blobs with overwhelming
	// probability.
	Seal(plaintext, key []byte) ([]byte, error)

	// Open verifies authentication before decrypting. Any authentication
	// or integrity failure — wrong key, modified nonce, modified body,
	// modified tag, or truncation — returns ErrAuthFailure and never a
	// partial plaintext. A blob shorter than the suite's minimum framing
	// is rejected with ErrCiphertextTooShort before any primitive runs.
	Open(blob, key []byte) ([]byte, error)

	// Overhead is this suite's deterministic per-message expansion:
	// nonce length plus tag length.
	Overhead() int
}

// newSuite constructs the stateless CipherSuite value for algo.
func newSuite(algo Algorithm) (CipherSuite, error) {
	switch algo {
	case AlgoAES256GCM:
		return aesGCMSuite{}, nil
	case AlgoChaCha20Poly1305:
		return chacha20Poly1305Suite{}, nil
	case AlgoXChaCha20Poly1305:
		return xchacha20Poly1305Suite{}, nil
	case AlgoAES256CTRHMACSHA256:
		return aesCTRHMACSuite{}, nil
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}

// suiteKeyLength reports algo's required raw key length, or
// ErrUnsupportedAlgorithm for an unknown algo, for use by Config.Validate.
func suiteKeyLength(algo Algorithm) (int, error) {
	s, err := newSuite(algo)
	if err != nil {
		return 0, err
	}
	return s.KeyLength(), nil
}

// aesGCMSuite is AES-256-GCM: 12-byte nonce, 16-byte tag.
type aesGCMSuite struct{}

func (aesGCMSuite) KeyLength() int { return 32 }
func (aesGCMSuite) Overhead() int  { return 12 + 16 }

func (s aesGCMSuite) aead(key []byte) (cipher.AEAD, error) {
	if err := ValidateKey(key, s.KeyLength()); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrimitiveUnavailable, err)
	}
	return cipher.NewGCM(block)
}

func (s aesGCMSuite) Seal(plaintext, key []byte) ([]byte, error) {
	aead, err := s.aead(key)
	if err != nil {
		return nil, err
	}
	nonce, err := randomBytes(aead.NonceSize())
	if err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (s aesGCMSuite) Open(blob, key []byte) ([]byte, error) {
	if err := ValidateKey(key, s.KeyLength()); err != nil {
		return nil, err
	}
	if len(blob) < s.Overhead() {
		return nil, ErrCiphertextTooShort
	}
	aead, err := s.aead(key)
	if err != nil {
		return nil, err
	}
	nonce, body := blob[:aead.NonceSize()], blob[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, body, nil)
	if err != nil {
		return nil, ErrAuthFailure
	}
	return plaintext, nil
}

// chacha20Poly1305Suite is ChaCha20-Poly1305: 12-byte nonce, 16-byte tag.
type chacha20Poly1305Suite struct{}

func (chacha20Poly1305Suite) KeyLength() int { return chacha20poly1305.KeySize }
func (chacha20Poly1305Suite) Overhead() int  { return chacha20poly1305.NonceSize + chacha20poly1305.Overhead }

func (s chacha20Poly1305Suite) aead(key []byte) (cipher.AEAD, error) {
	if err := ValidateKey(key, s.KeyLength()); err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrimitiveUnavailable, err)
	}
	return aead, nil
}

func (s chacha20Poly1305Suite) Seal(plaintext, key []byte) ([]byte, error) {
	aead, err := s.aead(key)
	if err != nil {
		return nil, err
	}
	nonce, err := randomBytes(aead.NonceSize())
	if err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (s chacha20Poly1305Suite) Open(blob, key []byte) ([]byte, error) {
	if err := ValidateKey(key, s.KeyLength()); err != nil {
		return nil, err
	}
	if len(blob) < s.Overhead() {
		return nil, ErrCiphertextTooShort
	}
	aead, err := s.aead(key)
	if err != nil {
		return nil, err
	}
	nonce, body := blob[:aead.NonceSize()], blob[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, body, nil)
	if err != nil {
		return nil, ErrAuthFailure
	}
	return plaintext, nil
}

// xchacha20Poly1305Suite is XChaCha20-Poly1305: 24-byte extended nonce,
// 16-byte tag. Safe to use with random nonces well beyond the message
// volume where plain ChaCha20-Poly1305's 12-byte nonce risks collision.
type xchacha20Poly1305Suite struct{}

func (xchacha20Poly1305Suite) KeyLength() int { return chacha20poly1305.KeySize }
func (xchacha20Poly1305Suite) Overhead() int {
	return chacha20poly1305.NonceSizeX + chacha20poly1305.Overhead
}

func (s xchacha20Poly1305Suite) aead(key []byte) (cipher.AEAD, error) {
	if err := ValidateKey(key, s.KeyLength()); err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrimitiveUnavailable, err)
	}
	return aead, nil
}

func (s xchacha20Poly1305Suite) Seal(plaintext, key []byte) ([]byte, error) {
	aead, err := s.aead(key)
	if err != nil {
		return nil, err
	}
	nonce, err := randomBytes(aead.NonceSize())
	if err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (s xchacha20Poly1305Suite) Open(blob, key []byte) ([]byte, error) {
	if err := ValidateKey(key, s.KeyLength()); err != nil {
		return nil, err
	}
	if len(blob) < s.Overhead() {
		return nil, ErrCiphertextTooShort
	}
	aead, err := s.aead(key)
	if err != nil {
		return nil, err
	}
	nonce, body := blob[:aead.NonceSize()], blob[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, body, nil)
	if err != nil {
		return nil, ErrAuthFailure
	}
	return plaintext, nil
}

// aesCTRHMACSuite is an encrypt-then-MAC composite built from a non-AEAD
// cipher and a MAC, the way the teacher repo's AES-SIV engine builds a
// deterministic AEAD from crypto/aes plus a constant-time tag compare.
// Its 64-byte key splits into two independent 32-byte subkeys: the first
// half for AES-256-CTR, the second for HMAC-SHA256. The tag covers
// nonce ∥ ciphertext, and is compared in constant time before any
// decryption is attempted. 16-byte IV, 32-byte tag.
type aesCTRHMACSuite struct{}

const aesCTRHMACIVSize = 16
const aesCTRHMACTagSize = sha256.Size

func (aesCTRHMACSuite) KeyLength() int { return 64 }
func (aesCTRHMACSuite) Overhead() int  { return aesCTRHMACIVSize + aesCTRHMACTagSize }

func (s aesCTRHMACSuite) subkeys(key []byte) (cipherKey, macKey []byte, err error) {
	if err := ValidateKey(key, s.KeyLength()); err != nil {
		return nil, nil, err
	}
	return key[:32], key[32:], nil
}

func (s aesCTRHMACSuite) Seal(plaintext, key []byte) ([]byte, error) {
	cipherKey, macKey, err := s.subkeys(key)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(cipherKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrimitiveUnavailable, err)
	}
	iv, err := randomBytes(aesCTRHMACIVSize)
	if err != nil {
		return nil, err
	}
	ciphertext := make([]byte, len(plaintext))
	cipher.NewCTR(block, iv).XORKeyStream(ciphertext, plaintext)

	mac := hmac.New(sha256.New, macKey)
	mac.Write(iv)
	mac.Write(ciphertext)
	tag := mac.Sum(nil)

	blob := make([]byte, 0, len(iv)+len(ciphertext)+len(tag))
	blob = append(blob, iv...)
	blob = append(blob, ciphertext...)
	blob = append(blob, tag...)
	return blob, nil
}

func (s aesCTRHMACSuite) Open(blob, key []byte) ([]byte, error) {
	cipherKey, macKey, err := s.subkeys(key)
	if err != nil {
		return nil, err
	}
	if len(blob) < s.Overhead() {
		return nil, ErrCiphertextTooShort
	}
	iv := blob[:aesCTRHMACIVSize]
	ciphertext := blob[aesCTRHMACIVSize : len(blob)-aesCTRHMACTagSize]
	tag := blob[len(blob)-aesCTRHMACTagSize:]

	mac := hmac.New(sha256.New, macKey)
	mac.Write(iv)
	mac.Write(ciphertext)
	expected := mac.Sum(nil)
	if subtle.ConstantTimeCompare(expected, tag) != 1 {
		return nil, ErrAuthFailure
	}

	block, err := aes.NewCipher(cipherKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrimitiveUnavailable, err)
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCTR(block, iv).XORKeyStream(plaintext, ciphertext)
	return plaintext, nil
}
