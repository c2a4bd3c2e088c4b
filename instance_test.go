package cascade

import (
	"bytes"
	"errors"
	"testing"
)

func mustCascade(t *testing.T, layers ...Algorithm) *Cascade {
	t.Helper()
	c, err := New(Config{Layers: layers})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{}); !IsConfigError(err) {
		t.Errorf("New(empty config) error = %v, want *ConfigError", err)
	}
	if _, err := New(Config{Layers: make11(AlgoAES256GCM)}); !IsConfigError(err) {
		t.Errorf("New(11 layers) error = %v, want *ConfigError", err)
	}
}

func TestEndToEndSingleLayer(t *testing.T) {
	c := mustCascade(t, AlgoAES256GCM)

	pk, err := c.DerivePasswordKey(PasswordKeyParams{Password: []byte("hunter2"), Cost: PresetInteractive})
	if err != nil {
		t.Fatalf("DerivePasswordKey: %v", err)
	}

	mk, emk, err := c.GenerateMasterKey(pk)
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}

	ed, err := c.Encrypt([]byte("Hello, Cascade!"), mk)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if len(ed.Ciphertext) != 12+15+16 {
		t.Errorf("ciphertext length = %d, want %d", len(ed.Ciphertext), 12+15+16)
	}

	got, err := c.Decrypt(ed, mk)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if string(got) != "Hello, Cascade!" {
		t.Errorf("got %q", got)
	}

	// Simulate a new session: rederive the password key from the persisted
	// salt and cost, unlock the persisted wrapped master key, and decrypt.
	pk2, err := c.DerivePasswordKey(PasswordKeyParams{Password: []byte("hunter2"), Salt: pk.Salt, Cost: pk.Cost})
	if err != nil {
		t.Fatalf("DerivePasswordKey (session 2): %v", err)
	}
	mk2, err := c.UnlockMasterKey(emk, pk2)
	if err != nil {
		t.Fatalf("UnlockMasterKey: %v", err)
	}
	got2, err := c.Decrypt(ed, mk2)
	if err != nil {
		t.Fatalf("Decrypt (session 2): %v", err)
	}
	if !bytes.Equal(got2, got) {
		t.Error("cross-session decryption returned different plaintext")
	}
}

func TestEncryptProducesDistinctOutputEachCall(t *testing.T) {
	c := mustCascade(t, AlgoAES256GCM, AlgoChaCha20Poly1305)
	pk, _ := c.DerivePasswordKey(PasswordKeyParams{Password: []byte("hunter2"), Cost: PresetInteractive})
	mk, _, err := c.GenerateMasterKey(pk)
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}

	ed1, err := c.Encrypt([]byte("same plaintext"), mk)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	ed2, err := c.Encrypt([]byte("same plaintext"), mk)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if bytes.Equal(ed1.WrappedContentKey, ed2.WrappedContentKey) {
		t.Error("two Encrypt calls produced identical wrapped content keys")
	}
	if bytes.Equal(ed1.Ciphertext, ed2.Ciphertext) {
		t.Error("two Encrypt calls produced identical ciphertexts")
	}
}

func TestEncryptDecryptVariousSizes(t *testing.T) {
	c := mustCascade(t, AlgoAES256GCM, AlgoXChaCha20Poly1305, AlgoAES256CTRHMACSHA256)
	pk, _ := c.DerivePasswordKey(PasswordKeyParams{Password: []byte("hunter2"), Cost: PresetInteractive})
	mk, _, err := c.GenerateMasterKey(pk)
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}

	sizes := []int{0, 1, 16, 1023, 1024, 65537, 1024 * 1024}
	for _, size := range sizes {
		data := bytes.Repeat([]byte{0xAB}, size)
		ed, err := c.Encrypt(data, mk)
		if err != nil {
			t.Fatalf("Encrypt(%d bytes): %v", size, err)
		}
		got, err := c.Decrypt(ed, mk)
		if err != nil {
			t.Fatalf("Decrypt(%d bytes): %v", size, err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("round trip mismatch for %d bytes", size)
		}
	}
}

func TestEncryptDecryptFullByteRange(t *testing.T) {
	c := mustCascade(t, AlgoChaCha20Poly1305)
	pk, _ := c.DerivePasswordKey(PasswordKeyParams{Password: []byte("hunter2"), Cost: PresetInteractive})
	mk, _, err := c.GenerateMasterKey(pk)
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}

	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	ed, err := c.Encrypt(data, mk)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	got, err := c.Decrypt(ed, mk)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("round trip mismatch across the full byte-value range")
	}
}

func TestDecryptDetectsTamperedCiphertext(t *testing.T) {
	c := mustCascade(t, AlgoAES256GCM, AlgoAES256CTRHMACSHA256, AlgoXChaCha20Poly1305, AlgoChaCha20Poly1305, AlgoAES256GCM)
	pk, _ := c.DerivePasswordKey(PasswordKeyParams{Password: []byte("hunter2"), Cost: PresetInteractive})
	mk, _, err := c.GenerateMasterKey(pk)
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}
	ed, err := c.Encrypt([]byte("five layers deep"), mk)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	tampered := append([]byte(nil), ed.Ciphertext...)
	tampered[len(tampered)-1] ^= 0x01
	badED := &EncryptedData{WrappedContentKey: ed.WrappedContentKey, Ciphertext: tampered}

	if _, err := c.Decrypt(badED, mk); !errors.Is(err, ErrWrongKeyOrTampered) {
		t.Errorf("Decrypt() error = %v, want ErrWrongKeyOrTampered", err)
	}
}

func TestDecryptDetectsTamperedWrappedContentKey(t *testing.T) {
	c := mustCascade(t, AlgoAES256GCM)
	pk, _ := c.DerivePasswordKey(PasswordKeyParams{Password: []byte("hunter2"), Cost: PresetInteractive})
	mk, _, err := c.GenerateMasterKey(pk)
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}
	ed, err := c.Encrypt([]byte("payload"), mk)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	tampered := append([]byte(nil), ed.WrappedContentKey...)
	tampered[0] ^= 0x01
	badED := &EncryptedData{WrappedContentKey: tampered, Ciphertext: ed.Ciphertext}

	if _, err := c.Decrypt(badED, mk); !errors.Is(err, ErrWrongKeyOrTampered) {
		t.Errorf("Decrypt() error = %v, want ErrWrongKeyOrTampered", err)
	}
}

func TestUnlockMasterKeyRejectsWrongPassword(t *testing.T) {
	c := mustCascade(t, AlgoAES256GCM)
	pk, err := c.DerivePasswordKey(PasswordKeyParams{Password: []byte("correct password"), Cost: PresetInteractive})
	if err != nil {
		t.Fatalf("DerivePasswordKey: %v", err)
	}
	_, emk, err := c.GenerateMasterKey(pk)
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}

	wrongPK, err := c.DerivePasswordKey(PasswordKeyParams{Password: []byte("wrong password"), Salt: pk.Salt, Cost: pk.Cost})
	if err != nil {
		t.Fatalf("DerivePasswordKey: %v", err)
	}
	if _, err := c.UnlockMasterKey(emk, wrongPK); !errors.Is(err, ErrWrongPasswordOrTampered) {
		t.Errorf("UnlockMasterKey() error = %v, want ErrWrongPasswordOrTampered", err)
	}
}

func TestChangePassword(t *testing.T) {
	c := mustCascade(t, AlgoAES256GCM, AlgoChaCha20Poly1305)
	oldPK, err := c.DerivePasswordKey(PasswordKeyParams{Password: []byte("old password"), Cost: PresetInteractive})
	if err != nil {
		t.Fatalf("DerivePasswordKey: %v", err)
	}
	mk, emk, err := c.GenerateMasterKey(oldPK)
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}
	ed, err := c.Encrypt([]byte("data encrypted before rotation"), mk)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	newPK, err := c.DerivePasswordKey(PasswordKeyParams{Password: []byte("new password"), Cost: PresetInteractive})
	if err != nil {
		t.Fatalf("DerivePasswordKey: %v", err)
	}
	newEMK, err := c.ChangePassword(emk, oldPK, newPK)
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err := c.UnlockMasterKey(newEMK, oldPK); !errors.Is(err, ErrWrongPasswordOrTampered) {
		t.Errorf("UnlockMasterKey(newEMK, oldPK) error = %v, want ErrWrongPasswordOrTampered", err)
	}

	mk2, err := c.UnlockMasterKey(newEMK, newPK)
	if err != nil {
		t.Fatalf("UnlockMasterKey(newEMK, newPK): %v", err)
	}
	got, err := c.Decrypt(ed, mk2)
	if err != nil {
		t.Fatalf("Decrypt with post-rotation master key: %v", err)
	}
	if string(got) != "data encrypted before rotation" {
		t.Errorf("got %q", got)
	}
}

func TestLayerMismatchRejected(t *testing.T) {
	c1 := mustCascade(t, AlgoAES256GCM)
	c2 := mustCascade(t, AlgoAES256GCM, AlgoChaCha20Poly1305)

	pk, err := c1.DerivePasswordKey(PasswordKeyParams{Password: []byte("hunter2"), Cost: PresetInteractive})
	if err != nil {
		t.Fatalf("DerivePasswordKey: %v", err)
	}
	if _, _, err := c2.GenerateMasterKey(pk); !errors.Is(err, ErrLayerMismatch) {
		t.Errorf("GenerateMasterKey() error = %v, want ErrLayerMismatch", err)
	}
}

func TestWipePasswordKeyAndMasterKeyZeroLayerKeys(t *testing.T) {
	c := mustCascade(t, AlgoAES256GCM, AlgoChaCha20Poly1305)
	pk, err := c.DerivePasswordKey(PasswordKeyParams{Password: []byte("hunter2"), Cost: PresetInteractive})
	if err != nil {
		t.Fatalf("DerivePasswordKey: %v", err)
	}
	mk, _, err := c.GenerateMasterKey(pk)
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}

	c.WipePasswordKey(pk)
	for _, k := range pk.layerKeys {
		for _, b := range k.rawKey {
			if b != 0 {
				t.Fatal("WipePasswordKey left a non-zero byte in a layer key")
			}
		}
	}

	c.WipeMasterKey(mk)
	for _, k := range mk.layerKeys {
		for _, b := range k.rawKey {
			if b != 0 {
				t.Fatal("WipeMasterKey left a non-zero byte in a layer key")
			}
		}
	}

	// Wiping nil keys must not panic.
	c.WipePasswordKey(nil)
	c.WipeMasterKey(nil)
}

func TestLayersReturnsACopy(t *testing.T) {
	c := mustCascade(t, AlgoAES256GCM, AlgoChaCha20Poly1305)
	layers := c.Layers()
	layers[0] = AlgoXChaCha20Poly1305
	if c.Layers()[0] != AlgoAES256GCM {
		t.Error("mutating the slice returned by Layers() affected the Cascade instance")
	}
}
