package common

// WipeByteArray overwrites the contents of b with zeros. Callers use it to
// clear password buffers as soon as they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
