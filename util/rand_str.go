// Package util contains small helpers used across the application that don't
// match any other package
package util

import "math/rand/v2"

const charset = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandStr returns a random lowercase alphanumeric string of length n. Used
// for request IDs and storage key tokens, so it doesn't need to be
// cryptographically strong, just collision-resistant enough.
func RandStr(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rand.IntN(len(charset))]
	}

	return string(b)
}
