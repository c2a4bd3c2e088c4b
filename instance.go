package cascade

import "fmt"

// Cascade is an immutable, configured instance of the layered encryption
// construction. Once built by New, it is safe to hold across the entire
// lifetime of a program and to use concurrently: it carries no mutable
// state, and every operation treats its PasswordKey/MasterKey arguments as
// read-only.
type Cascade struct {
	layers []Algorithm
}

// New validates config and returns a ready Cascade instance.
func New(config Config) (*Cascade, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	layers := make([]Algorithm, len(config.Layers))
	copy(layers, config.Layers)
	return &Cascade{layers: layers}, nil
}

// Layers returns a copy of this instance's configured layer list, in
// inner-to-outer seal order: index 0 is applied first (innermost), the
// last index applied last (outermost).
func (c *Cascade) Layers() []Algorithm {
	out := make([]Algorithm, len(c.layers))
	copy(out, c.layers)
	return out
}

// DerivePasswordKey stretches params.Password into one layer key per
// configured cascade layer via the password hash followed by
// domain-separated KDF expansion. If params.Salt is nil a fresh salt is
// generated and returned on the result; passing the same password, salt,
// and cost in a future session rederives an equivalent PasswordKey.
func (c *Cascade) DerivePasswordKey(params PasswordKeyParams) (*PasswordKey, error) {
	base, saltOut, err := passwordHash(params.Password, params.Salt, params.Cost)
	if err != nil {
		return nil, err
	}
	layerKeys, err := deriveLayerKeys(base, PurposePassword, c.layers)
	Wipe(base)
	if err != nil {
		return nil, err
	}
	return &PasswordKey{Salt: saltOut, Cost: params.Cost, layerKeys: layerKeys}, nil
}

// GenerateMasterKey creates a fresh random MasterKey and wraps its raw
// material under pk, returning both the live MasterKey and its persistable
// wrapped form. The 32 bytes of raw master material are wiped before this
// returns, on every exit path.
func (c *Cascade) GenerateMasterKey(pk *PasswordKey) (*MasterKey, EncryptedMasterKey, error) {
	if pk == nil || !matchesLayers(pk.layerKeys, c.layers) {
		return nil, nil, ErrLayerMismatch
	}

	rawMaster, err := randomBytes(32)
	if err != nil {
		return nil, nil, err
	}

	masterLayerKeys, err := deriveLayerKeys(rawMaster, PurposeMaster, c.layers)
	if err != nil {
		Wipe(rawMaster)
		return nil, nil, err
	}

	wrapped, err := cascadeSeal(rawMaster, pk.layerKeys)
	Wipe(rawMaster)
	if err != nil {
		wipeAll(masterLayerKeys)
		return nil, nil, err
	}

	return &MasterKey{layerKeys: masterLayerKeys}, EncryptedMasterKey(wrapped), nil
}

// UnlockMasterKey unwraps emk under pk and rederives the MasterKey's layer
// keys from the recovered master material. A wrong password, or any
// tampering with emk, surfaces as ErrWrongPasswordOrTampered; the 32 bytes
// of recovered master material are wiped before this returns regardless of
// outcome.
func (c *Cascade) UnlockMasterKey(emk EncryptedMasterKey, pk *PasswordKey) (*MasterKey, error) {
	if pk == nil || !matchesLayers(pk.layerKeys, c.layers) {
		return nil, ErrLayerMismatch
	}

	rawMaster, err := cascadeOpen(emk, pk.layerKeys)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongPasswordOrTampered, ErrAuthFailure)
	}

	masterLayerKeys, err := deriveLayerKeys(rawMaster, PurposeMaster, c.layers)
	Wipe(rawMaster)
	if err != nil {
		return nil, err
	}

	return &MasterKey{layerKeys: masterLayerKeys}, nil
}

// Encrypt generates a fresh random content key, wraps it under mk, and
// seals data under the content key's own derived layer keys. The content
// key's raw 32-byte material and derived layer keys are wiped before this
// returns.
func (c *Cascade) Encrypt(data []byte, mk *MasterKey) (*EncryptedData, error) {
	if mk == nil || !matchesLayers(mk.layerKeys, c.layers) {
		return nil, ErrLayerMismatch
	}

	rawContent, err := randomBytes(32)
	if err != nil {
		return nil, err
	}

	contentLayerKeys, err := deriveLayerKeys(rawContent, PurposeContent, c.layers)
	if err != nil {
		Wipe(rawContent)
		return nil, err
	}

	wrappedContentKey, err := cascadeSeal(rawContent, mk.layerKeys)
	Wipe(rawContent)
	if err != nil {
		wipeAll(contentLayerKeys)
		return nil, err
	}

	ciphertext, err := cascadeSeal(data, contentLayerKeys)
	wipeAll(contentLayerKeys)
	if err != nil {
		return nil, err
	}

	return &EncryptedData{WrappedContentKey: wrappedContentKey, Ciphertext: ciphertext}, nil
}

// Decrypt unwraps ed.WrappedContentKey under mk to recover the per-item
// content key, then opens ed.Ciphertext under that key's derived layer
// keys. Either stage's authentication failure surfaces as
// ErrWrongKeyOrTampered; the recovered content material and its derived
// layer keys are wiped before this returns.
func (c *Cascade) Decrypt(ed *EncryptedData, mk *MasterKey) ([]byte, error) {
	if mk == nil || !matchesLayers(mk.layerKeys, c.layers) {
		return nil, ErrLayerMismatch
	}

	rawContent, err := cascadeOpen(ed.WrappedContentKey, mk.layerKeys)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongKeyOrTampered, ErrAuthFailure)
	}

	contentLayerKeys, err := deriveLayerKeys(rawContent, PurposeContent, c.layers)
	Wipe(rawContent)
	if err != nil {
		return nil, err
	}

	plaintext, err := cascadeOpen(ed.Ciphertext, contentLayerKeys)
	wipeAll(contentLayerKeys)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongKeyOrTampered, ErrAuthFailure)
	}

	return plaintext, nil
}

// ChangePassword re-wraps the master material recovered from emk under
// newPK, without touching any previously encrypted data: it never
// re-seeds the master key, only its password-level wrapper. oldPK must
// still unlock emk or this fails with ErrWrongPasswordOrTampered.
func (c *Cascade) ChangePassword(emk EncryptedMasterKey, oldPK, newPK *PasswordKey) (EncryptedMasterKey, error) {
	if oldPK == nil || !matchesLayers(oldPK.layerKeys, c.layers) {
		return nil, ErrLayerMismatch
	}
	if newPK == nil || !matchesLayers(newPK.layerKeys, c.layers) {
		return nil, ErrLayerMismatch
	}

	rawMaster, err := cascadeOpen(emk, oldPK.layerKeys)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongPasswordOrTampered, ErrAuthFailure)
	}

	newBlob, err := cascadeSeal(rawMaster, newPK.layerKeys)
	Wipe(rawMaster)
	if err != nil {
		return nil, err
	}

	return EncryptedMasterKey(newBlob), nil
}

// WipePasswordKey zeroes every layer key owned by pk.
func (c *Cascade) WipePasswordKey(pk *PasswordKey) {
	if pk == nil {
		return
	}
	wipeAll(pk.layerKeys)
}

// WipeMasterKey zeroes every layer key owned by mk.
func (c *Cascade) WipeMasterKey(mk *MasterKey) {
	if mk == nil {
		return
	}
	wipeAll(mk.layerKeys)
}
