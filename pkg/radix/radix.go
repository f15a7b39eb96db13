// Package radix converts byte strings to and from a string over an
// arbitrary character set, treating the bytes as a single big-endian
// unsigned integer.
package radix

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrInvalidCharacter is returned by FromBase when the input contains a
// byte outside the supplied alphabet.
var ErrInvalidCharacter = errors.New("radix: invalid character")

// ErrAlphabetSize is returned when an alphabet is too small or too large
// to index with a single byte.
var ErrAlphabetSize = errors.New("radix: alphabet must have between 2 and 256 characters")

// ToBase converts data, interpreted as a big-endian unsigned integer, into
// its minimal-length representation over alphabet. The empty input and a
// zero value both yield the single-character string alphabet[0:1].
func ToBase(data []byte, alphabet string) (string, error) {
	base := len(alphabet)
	if base < 2 || base > 256 {
		return "", ErrAlphabetSize
	}

	value := new(big.Int).SetBytes(data)
	if value.Sign() == 0 {
		return string(alphabet[0]), nil
	}

	b := big.NewInt(int64(base))
	mod := new(big.Int)
	digits := make([]byte, 0, len(data)*2)
	for value.Sign() > 0 {
		value.DivMod(value, b, mod)
		digits = append(digits, alphabet[mod.Int64()])
	}
	reverse(digits)
	return string(digits), nil
}

// FromBase is the inverse of ToBase for any string composed solely of
// alphabet's characters. It returns a single 0x00 byte for the zero
// representation. The result is the minimal big-endian representation of
// the encoded integer; leading zero bytes present in the original input to
// ToBase are not recoverable here.
func FromBase(s string, alphabet string) ([]byte, error) {
	base := len(alphabet)
	if base < 2 || base > 256 {
		return nil, ErrAlphabetSize
	}

	var lookup [256]int16
	for i := range lookup {
		lookup[i] = -1
	}
	for i := 0; i < base; i++ {
		lookup[alphabet[i]] = int16(i)
	}

	value := new(big.Int)
	b := big.NewInt(int64(base))
	for i := 0; i < len(s); i++ {
		d := lookup[s[i]]
		if d < 0 {
			return nil, errors.Wrapf(ErrInvalidCharacter, "byte %q at position %d", s[i], i)
		}
		value.Mul(value, b)
		value.Add(value, big.NewInt(int64(d)))
	}

	out := value.Bytes()
	if len(out) == 0 {
		return []byte{0x00}, nil
	}
	return out, nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
