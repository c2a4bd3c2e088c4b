package cascade

import (
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

const (
	argon2SaltSize  = 16
	pbkdf2SaltSize  = 32
	passwordKeySize = 32
)

// saltSizeFor returns the salt length a password-hash algorithm requires.
func saltSizeFor(algo PHAlgorithm) int {
	if algo == PHPBKDF2SHA256 {
		return pbkdf2SaltSize
	}
	return argon2SaltSize
}

// passwordHash stretches password with salt under cost into exactly 32
// bytes of uniform key material. If salt is nil, a fresh one is generated
// via the CSPRNG and returned alongside the key. Rejects a salt of the
// wrong length, a cost below its floor, or missing required params with a
// ParameterError.
func passwordHash(password, salt []byte, cost CostPreset) (key, saltOut []byte, err error) {
	if len(password) == 0 {
		return nil, nil, NewParameterError("password", "cannot be empty")
	}
	if err := ValidateCost(cost); err != nil {
		return nil, nil, err
	}

	wantSaltSize := saltSizeFor(cost.Algorithm)
	if salt == nil {
		salt, err = randomBytes(wantSaltSize)
		if err != nil {
			return nil, nil, err
		}
	} else if err := ValidateSalt(salt, wantSaltSize); err != nil {
		return nil, nil, err
	}

	switch cost.Algorithm {
	case PHArgon2id:
		key = argon2.IDKey(password, salt, cost.Iterations, cost.Memory, cost.Parallelism, passwordKeySize)
	case PHPBKDF2SHA256:
		key = pbkdf2.Key(password, salt, int(cost.Iterations), passwordKeySize, sha256.New)
	default:
		return nil, nil, NewParameterError("cost.Algorithm", "unrecognized password-hash algorithm")
	}

	return key, salt, nil
}
