package cascade

import "runtime"

// Wipe overwrites buf with zeroes in a way the compiler cannot optimize
// away as a dead store: the write loop is followed by a runtime.KeepAlive
// on the slice header, which keeps the store live across the function's
// exit even though buf is never read again afterward. Safe to call with a
// nil or empty buffer, and safe to call from deferred/error-unwind paths.
func Wipe(buf []byte) {
	if len(buf) == 0 {
		return
	}
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

// wipeAll wipes every LayerKey's raw key material in keys, in order.
func wipeAll(keys []LayerKey) {
	for i := range keys {
		Wipe(keys[i].rawKey)
	}
}
