// Package checksum computes the short, URL-safe tag that authenticates a
// frame's body against accidental corruption (spec §4.2). It is a keyed
// checksum, not a MAC: the default key is public.
package checksum

import (
	"github.com/dchest/siphash"
	"github.com/jontey/uqpack/pkg/radix"
)

// Key is the 128-bit SipHash-2-4 key, split into two little-endian halves
// exactly as original_source/cpp/include/common.hpp's SipHashKey does.
type Key struct {
	K0 uint64
	K1 uint64
}

// DefaultKey is the compile-time default: the bytes 0x00..0x0F split into
// two little-endian uint64 halves. Interoperability with the default
// build requires this exact key.
var DefaultKey = Key{
	K0: 0x0706050403020100,
	K1: 0x0F0E0D0C0B0A0908,
}

// Tag computes the 2-character Base64-URL tag over body under key: the
// 64-bit SipHash-2-4 digest is rendered into the Base64-URL alphabet,
// least-significant digit last, and truncated to its first two
// characters.
func Tag(body []byte, key Key) string {
	digest := siphash.Hash(key.K0, key.K1, body)

	rendered := renderUint64(digest, radix.Base64URL)
	if len(rendered) < 2 {
		// Pad on the left with the alphabet's zero digit so short digests
		// (a digest with many leading zero base-64 digits) still produce
		// a 2-character tag.
		pad := make([]byte, 2-len(rendered))
		for i := range pad {
			pad[i] = radix.Base64URL[0]
		}
		rendered = string(pad) + rendered
	}
	return rendered[:2]
}

// renderUint64 renders v in base len(alphabet), most-significant digit
// first, with no leading-zero trimming beyond the natural zero case.
func renderUint64(v uint64, alphabet string) string {
	if v == 0 {
		return string(alphabet[0])
	}
	base := uint64(len(alphabet))
	var digits []byte
	for v > 0 {
		digits = append(digits, alphabet[v%base])
		v /= base
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
