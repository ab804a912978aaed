package slug

import (
	"crypto/rand"
	mathrand "math/rand/v2"
)

const (
	lowerAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	mixedAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// randomSuffix returns n random alphanumeric characters, upper-case letters
// included unless lower is set.
func randomSuffix(n int, lower bool) string {
	if n <= 0 {
		return ""
	}
	alphabet := mixedAlphabet
	if lower {
		alphabet = lowerAlphabet
	}

	// Reject bytes above the largest multiple of len(alphabet) to keep the
	// distribution uniform.
	limit := byte(256 - 256%len(alphabet))
	out := make([]byte, 0, n)
	buf := make([]byte, n*2)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			for len(out) < n {
				out = append(out, alphabet[mathrand.IntN(len(alphabet))])
			}
			break
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out)
}
