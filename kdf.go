package cascade

import (
	"crypto/sha256"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/crypto/hkdf"
)

// deriveSubkey expands a uniform 32-byte root key into length bytes of
// independent subkey material, domain-separated by purpose and index.
// It is deterministic given identical inputs, and uses HKDF-Expand with no
// extract step: rootKey32 MUST already be uniformly random (the output of
// a password hash or the CSPRNG), never caller-chosen low-entropy data —
// this function has no extract stage to compensate for that.
//
// Because HKDF-Expand is a PRF keystream keyed on rootKey32 and info, the
// output for a shorter length is always a prefix of the output for any
// longer length with the same (rootKey32, purpose, index): callers may
// safely request only as many bytes as a given layer's cipher needs.
func deriveSubkey(rootKey32 []byte, purpose Purpose, index int, length int) []byte {
	info := fmt.Sprintf("cascade-%s-layer-%s", purpose, strconv.Itoa(index))
	reader := hkdf.Expand(sha256.New, rootKey32, []byte(info))
	out := make([]byte, length)
	if _, err := io.ReadFull(reader, out); err != nil {
		// hkdf.Expand only errors past 255*sha256.Size bytes drawn from one
		// info string; no layer key's length ever approaches that.
		panic(fmt.Sprintf("cascade: HKDF-Expand exhausted for %s: %v", info, err))
	}
	return out
}
