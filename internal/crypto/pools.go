package crypto

import "strings"

// Character pools. Order matters for index-based selection, not for correctness.
const (
	standardPool = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*"

	vowelPool     = "aeiou"
	consonantPool = "bcdfghjklmnpqrstvwxz"

	// I and Y are left out to avoid confusion with l and the vowel y.
	upperPool = "ABCDEFGHJKLMNOPQRSTUVWXZ"
	digitPool = "0123456789"
)

// isConsonant reports whether c is a consonant from consonantPool, ignoring case.
func isConsonant(c byte) bool {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return strings.IndexByte(consonantPool, c) >= 0
}
