package cascade

// LayerKey is one cascade layer's derived key: its algorithm and a raw key
// of that algorithm's required length. LayerKey values exist only in
// process memory and are never persisted; they are owned exclusively by
// the PasswordKey or MasterKey that derived them and are wiped when that
// key is destroyed.
type LayerKey struct {
	algorithm Algorithm
	rawKey    []byte
}

// Algorithm is the AEAD suite this layer key was derived for.
func (k LayerKey) Algorithm() Algorithm { return k.algorithm }

// PasswordKey is the outermost level of the key hierarchy: one derived
// layer key per configured cascade layer, rederived each session from the
// password. Salt and Cost must be persisted to rederive the same key in a
// future session; the layer keys themselves are session-only.
type PasswordKey struct {
	Salt      []byte
	Cost      CostPreset
	layerKeys []LayerKey
}

// MasterKey is the middle level of the key hierarchy: one derived layer
// key per configured cascade layer, generated once and thereafter wrapped
// under (and unwrapped from) a PasswordKey. Session-only; the 32 bytes of
// raw master material it was derived from are wiped immediately after
// derivation and never retained.
type MasterKey struct {
	layerKeys []LayerKey
}

// EncryptedMasterKey is the persistable wrapped form of a MasterKey's raw
// material: 32 bytes of master material sealed through the cascade with a
// PasswordKey's layer keys. Self-framing, like any cascade output.
type EncryptedMasterKey []byte

// EncryptedData is the persistable output of Encrypt: a freshly generated
// content key wrapped under a MasterKey, and the plaintext sealed under
// that content key's own layer keys.
type EncryptedData struct {
	WrappedContentKey []byte
	Ciphertext        []byte
}

// deriveLayerKeys derives one LayerKey per entry in layers from rootKey32,
// domain-separated by purpose and layer index. The caller MUST wipe
// rootKey32 immediately after this returns, on every exit path — success
// or failure.
func deriveLayerKeys(rootKey32 []byte, purpose Purpose, layers []Algorithm) ([]LayerKey, error) {
	keys := make([]LayerKey, len(layers))
	for i, algo := range layers {
		length, err := suiteKeyLength(algo)
		if err != nil {
			wipeAll(keys[:i])
			return nil, err
		}
		keys[i] = LayerKey{algorithm: algo, rawKey: deriveSubkey(rootKey32, purpose, i, length)}
	}
	return keys, nil
}

// matchesLayers reports whether keys carries exactly one LayerKey per
// entry in layers, with matching algorithms in the same order — the
// invariant that ties a PasswordKey or MasterKey to the Cascade instance
// that must operate on it.
func matchesLayers(keys []LayerKey, layers []Algorithm) bool {
	if len(keys) != len(layers) {
		return false
	}
	for i, algo := range layers {
		if keys[i].algorithm != algo {
			return false
		}
	}
	return true
}
