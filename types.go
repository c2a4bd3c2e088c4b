package cascade

import "strconv"

// Algorithm identifies one AEAD suite usable as a cascade layer.
type Algorithm uint8

const (
	// AlgoAES256GCM is AES-256 in Galois/Counter Mode. 12-byte nonce,
	// 16-byte tag.
	AlgoAES256GCM Algorithm = iota + 1
	// AlgoChaCha20Poly1305 is the ChaCha20 stream cipher with Poly1305
	// authentication. 12-byte nonce, 16-byte tag.
	AlgoChaCha20Poly1305
	// AlgoXChaCha20Poly1305 is ChaCha20-Poly1305 with the 24-byte extended
	// nonce construction, safe for random nonces at very high volume.
	// 24-byte nonce, 16-byte tag.
	AlgoXChaCha20Poly1305
	// AlgoAES256CTRHMACSHA256 is an encrypt-then-MAC composite: AES-256 in
	// CTR mode, authenticated with HMAC-SHA256 over nonce ∥ ciphertext,
	// using independent 32-byte cipher and MAC subkeys. 16-byte IV,
	// 32-byte tag.
	AlgoAES256CTRHMACSHA256
)

// String returns the algorithm's canonical name.
func (a Algorithm) String() string {
	switch a {
	case AlgoAES256GCM:
		return "aes-256-gcm"
	case AlgoChaCha20Poly1305:
		return "chacha20-poly1305"
	case AlgoXChaCha20Poly1305:
		return "xchacha20-poly1305"
	case AlgoAES256CTRHMACSHA256:
		return "aes-256-ctr-hmac-sha256"
	default:
		return "unknown"
	}
}

// Purpose domain-separates KDF output across the three levels of the key
// hierarchy. The same root key material derived under two different
// purposes must yield computationally independent subkeys.
type Purpose string

const (
	// PurposePassword domain-separates layer keys derived from password
	// hash output.
	PurposePassword Purpose = "PASSWORD"
	// PurposeMaster domain-separates layer keys derived from random
	// master-key material.
	PurposeMaster Purpose = "MASTER"
	// PurposeContent domain-separates layer keys derived from random
	// per-item content-key material.
	PurposeContent Purpose = "CONTENT"
)

// PHAlgorithm selects the password-hash construction.
type PHAlgorithm uint8

const (
	// PHArgon2id is the memory-hard Argon2id password hash (recommended).
	PHArgon2id PHAlgorithm = iota + 1
	// PHPBKDF2SHA256 is PBKDF2-HMAC-SHA256, CPU-hard only.
	PHPBKDF2SHA256
)

// CostPreset names a pre-tuned password-hash cost level. INTERACTIVE,
// MODERATE, and SENSITIVE are calibrated so that, on typical commodity
// hardware, interactive completes in well under 200ms, moderate takes at
// least 0.5s, and sensitive takes at least 2s.
type CostPreset struct {
	Algorithm   PHAlgorithm
	Memory      uint32 // Argon2id memory, in KiB. Unused for PBKDF2.
	Iterations  uint32 // Argon2id time parameter, or PBKDF2 iteration count.
	Parallelism uint8  // Argon2id parallelism. Unused for PBKDF2.
}

// Named cost presets, per spec: interactive unlocks feel instant, moderate
// suits routine logins, sensitive suits high-value secrets.
var (
	PresetInteractive = CostPreset{Algorithm: PHArgon2id, Memory: 19 * 1024, Iterations: 2, Parallelism: 1}
	PresetModerate    = CostPreset{Algorithm: PHArgon2id, Memory: 64 * 1024, Iterations: 3, Parallelism: 4}
	PresetSensitive   = CostPreset{Algorithm: PHArgon2id, Memory: 256 * 1024, Iterations: 4, Parallelism: 4}

	// PresetInteractivePBKDF2, PresetModeratePBKDF2, and
	// PresetSensitivePBKDF2 are the PBKDF2 equivalents, for hosts that
	// cannot afford Argon2id's memory footprint.
	PresetInteractivePBKDF2 = CostPreset{Algorithm: PHPBKDF2SHA256, Iterations: 300_000}
	PresetModeratePBKDF2    = CostPreset{Algorithm: PHPBKDF2SHA256, Iterations: 1_200_000}
	PresetSensitivePBKDF2   = CostPreset{Algorithm: PHPBKDF2SHA256, Iterations: 4_800_000}
)

// minimum cost floors: below these, DerivePasswordKey rejects the call
// with a ParameterError regardless of which preset-like value was passed.
const (
	minArgon2Memory     uint32 = 8 * 1024
	minArgon2Iterations uint32 = 1
	minPBKDF2Iterations uint32 = 100_000
)

// Config configures a Cascade instance.
type Config struct {
	// Layers is the ordered list of AEAD algorithms applied by Seal, in
	// inner-to-outer order: index 0 is applied first (innermost), the
	// last index applied last (outermost). Open reverses it. Must have 1
	// to 10 entries.
	Layers []Algorithm
}

// Validate checks that c describes a usable cascade.
func (c *Config) Validate() error {
	if c == nil {
		return NewConfigError("", "config cannot be nil")
	}
	if len(c.Layers) == 0 {
		return NewConfigError("layers", "at least one layer")
	}
	if len(c.Layers) > 10 {
		return NewConfigError("layers", "at most 10 layers")
	}
	for i, a := range c.Layers {
		if _, err := suiteKeyLength(a); err != nil {
			return NewConfigError("layers", err.Error()+" at index "+strconv.Itoa(i))
		}
	}
	return nil
}

// PasswordKeyParams configures DerivePasswordKey.
type PasswordKeyParams struct {
	// Password is the low-entropy secret. Both string-derived UTF-8 bytes
	// and pre-encoded byte slices are accepted identically.
	Password []byte
	// Salt is reused across sessions for the same password; if nil, a
	// fresh one is generated via the CSPRNG and returned on the result.
	Salt []byte
	// Cost selects the password-hash algorithm and its tuning. Required.
	Cost CostPreset
}
