// Package cascade provides cascading authenticated encryption: plaintext is
// sealed by a user-configured ordered sequence of independent symmetric AEAD
// layers (one to ten), each with its own independently derived key. A
// three-level key hierarchy isolates long-lived secrets from per-item
// encryption and supports password rotation without re-encrypting data.
//
// # Overview
//
// cascade implements three layered concepts:
//
//   - A PasswordKey, derived from a low-entropy password via a password
//     hash (memory-hard Argon2id, or the CPU-hard-only PBKDF2).
//   - A MasterKey, randomly generated once and wrapped under the
//     PasswordKey so that changing the password never requires
//     re-encrypting data.
//   - A per-item ContentKey, randomly generated for every call to Encrypt
//     and wrapped under the MasterKey.
//
// Each of these keys owns one independently derived key per configured
// cascade layer; sealing folds the layers in order, opening folds them in
// reverse, so compromise of any single AEAD primitive does not by itself
// break confidentiality or integrity.
//
// # Supported Cipher Suites
//
// - AES-256-GCM: AES with 256-bit keys in Galois/Counter Mode.
// - ChaCha20-Poly1305: stream cipher with Poly1305 authentication.
// - XChaCha20-Poly1305: ChaCha20-Poly1305 with an extended 24-byte nonce,
//   safe for random-nonce use at very high message volume.
// - AES-256-CTR-HMAC-SHA256: an encrypt-then-MAC composite over AES-CTR
//   and HMAC-SHA256 with independent cipher/MAC subkeys.
//
// All four are self-framing: a sealed blob is nonce ∥ ciphertext ∥ tag with
// no external length fields, so a caller never threads lengths alongside
// ciphertext.
//
// # Basic Usage
//
//	c, err := cascade.New(cascade.Config{
//	    Layers: []cascade.Algorithm{cascade.AlgoAES256GCM, cascade.AlgoXChaCha20Poly1305},
//	})
//	if err != nil {
//	    panic(err)
//	}
//
//	pk, err := c.DerivePasswordKey(cascade.PasswordKeyParams{
//	    Password: []byte("correct horse battery staple"),
//	    Cost:     cascade.PresetModerate,
//	})
//	mk, emk, err := c.GenerateMasterKey(pk)
//	ed, err := c.Encrypt([]byte("secret"), mk)
//	plaintext, err := c.Decrypt(ed, mk)
//
// # Security Considerations
//
// Protected against:
//   - Unauthorized reading of sealed data
//   - Tampering with any layer of the cascade (authenticated at every layer)
//   - Offline brute-force of the password (memory-hard password hashing)
//
// Not protected against:
//   - Memory dumps while keys are held in process memory
//   - Side-channel attacks on the host (timing, cache)
//   - Key escrow or multi-party sharing (not implemented)
//   - Compromised hosts
//
// # Key Derivation
//
// The password hash (Argon2id, or PBKDF2-HMAC-SHA256 as an alternate) turns
// a low-entropy password into 32 bytes of uniform key material. Every
// subsequent subkey — one per cascade layer, for the password, master, and
// content levels — is derived from a uniform 32-byte root via HKDF-Expand
// with a domain-separated info string, never by reusing a password-hash or
// random root directly as a cipher key.
//
// # Envelope Layout
//
// EncryptedMasterKey, and the ciphertext half of EncryptedData, are each
// the left fold of every configured layer's seal function over the
// previous layer's output. There is no version byte: changing the layer
// list breaks compatibility by design, so a caller that persists one of
// these blobs must persist the layer list alongside it.
package cascade
