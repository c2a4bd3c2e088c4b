package cascade

import (
	"crypto/rand"
	"fmt"
)

// randomBytes returns n cryptographically secure random bytes. It never
// falls back to a non-CSPRNG source: any failure to read from the OS
// entropy pool is fatal and surfaces as ErrRandomnessUnavailable.
func randomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
	}
	return buf, nil
}
