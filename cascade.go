package cascade

// cascadeSeal folds plaintext through layerKeys in order: layerKeys[0] is
// applied first (innermost), layerKeys[len-1] last (outermost). Each
// layer's output becomes the next layer's input.
func cascadeSeal(plaintext []byte, layerKeys []LayerKey) ([]byte, error) {
	c := plaintext
	for i := range layerKeys {
		suite, err := newSuite(layerKeys[i].algorithm)
		if err != nil {
			return nil, err
		}
		c, err = suite.Seal(c, layerKeys[i].rawKey)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// cascadeOpen reverses cascadeSeal: the outermost layer (the last entry in
// layerKeys) is opened first, the innermost last. Any layer's
// authentication failure aborts immediately; no partial plaintext is ever
// returned, and the error never identifies which layer failed.
func cascadeOpen(blob []byte, layerKeys []LayerKey) ([]byte, error) {
	c := blob
	for i := len(layerKeys) - 1; i >= 0; i-- {
		suite, err := newSuite(layerKeys[i].algorithm)
		if err != nil {
			return nil, err
		}
		var openErr error
		c, openErr = suite.Open(c, layerKeys[i].rawKey)
		if openErr != nil {
			return nil, openErr
		}
	}
	return c, nil
}

// cascadeOverhead is the deterministic total ciphertext expansion a
// cascade of the given layers adds to any plaintext.
func cascadeOverhead(layers []Algorithm) (int, error) {
	total := 0
	for _, algo := range layers {
		suite, err := newSuite(algo)
		if err != nil {
			return 0, err
		}
		total += suite.Overhead()
	}
	return total, nil
}
