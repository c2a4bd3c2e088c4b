package cascade

import "testing"

func TestWipeZeroesBuffer(t *testing.T) {
	buf := make([]byte, 32)
	for i := range buf {
		buf[i] = byte(i + 1)
	}
	Wipe(buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, b)
		}
	}
}

func TestWipeEmptyBufferDoesNotPanic(t *testing.T) {
	Wipe(nil)
	Wipe([]byte{})
}

func TestWipeAllZeroesEveryKey(t *testing.T) {
	keys := []LayerKey{
		{algorithm: AlgoAES256GCM, rawKey: []byte{1, 2, 3, 4}},
		{algorithm: AlgoChaCha20Poly1305, rawKey: []byte{5, 6, 7, 8}},
	}
	wipeAll(keys)
	for i, k := range keys {
		for j, b := range k.rawKey {
			if b != 0 {
				t.Errorf("keys[%d].rawKey[%d] = %d, want 0", i, j, b)
			}
		}
	}
}
