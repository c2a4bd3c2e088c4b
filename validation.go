package cascade

import "fmt"

// Input validation helpers for defensive programming.

// ValidateKey checks that key has the exact size a suite requires.
func ValidateKey(key []byte, expectedSize int) error {
	if key == nil {
		return NewKeyError("key cannot be nil")
	}
	if len(key) != expectedSize {
		return NewKeyError(fmt.Sprintf("got %d bytes, expected %d bytes", len(key), expectedSize))
	}
	return nil
}

// ValidateSalt checks that salt has the exact size a password hash
// algorithm requires.
func ValidateSalt(salt []byte, expectedSize int) error {
	if len(salt) != expectedSize {
		return NewParameterError("salt", fmt.Sprintf("got %d bytes, expected %d bytes", len(salt), expectedSize))
	}
	return nil
}

// ValidateCost checks that a CostPreset is at or above the algorithm's
// minimum-cost floor and carries the required fields for its algorithm.
func ValidateCost(cost CostPreset) error {
	switch cost.Algorithm {
	case PHArgon2id:
		if cost.Memory < minArgon2Memory {
			return NewParameterError("cost.Memory", fmt.Sprintf("below minimum of %d KiB", minArgon2Memory))
		}
		if cost.Iterations < minArgon2Iterations {
			return NewParameterError("cost.Iterations", fmt.Sprintf("below minimum of %d", minArgon2Iterations))
		}
		if cost.Parallelism == 0 {
			return NewParameterError("cost.Parallelism", "must be at least 1")
		}
	case PHPBKDF2SHA256:
		if cost.Iterations < minPBKDF2Iterations {
			return NewParameterError("cost.Iterations", fmt.Sprintf("below minimum of %d", minPBKDF2Iterations))
		}
	default:
		return NewParameterError("cost.Algorithm", "unrecognized password-hash algorithm")
	}
	return nil
}

// ValidateLayers checks a layer list in isolation, outside of a full
// Config — used when validating a layer list supplied alongside
// persisted state at unlock time.
func ValidateLayers(layers []Algorithm) error {
	cfg := Config{Layers: layers}
	return cfg.Validate()
}
