// Package common holds the few helpers shared across client layers.
package common

// WipeByteArray overwrites the slice with zeros. Used to scrub passwords
// from memory once they have been sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
