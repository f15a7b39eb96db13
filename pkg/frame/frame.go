// Package frame composes and decomposes the UQPack wire string
// "<header>:<body>:<tag>" (spec §4.5) and encodes/decodes the header's two
// hex nibbles. It never computes or validates the checksum itself — that
// crosses into C2/C6 territory and stays the orchestrator's job.
package frame

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	headerPrefix = "PX"
	headerLen    = 4
	tagLen       = 2
)

var (
	ErrInvalidFormat    = errors.New("frame: fewer than two ':' separators")
	ErrInvalidHeader    = errors.New("frame: malformed header")
	ErrConflictingFlags = errors.New("frame: more than one compression bit set in header")
	ErrInvalidBody      = errors.New("frame: body is empty")
)

// Header is the parsed form of a frame's 4-byte header: two hex nibbles
// following the literal "PX".
type Header struct {
	CFlag byte // bits: 0x1=Lz4, 0x2=MessagePack, 0x4=Zstd, 0x8=Brotli
	EFlag byte // bit 0x1 = base index; remaining bits reserved, must be 0
}

// String renders the header as its 4-character wire form.
func (h Header) String() string {
	return headerPrefix + strconv.FormatUint(uint64(h.CFlag), 16) + strconv.FormatUint(uint64(h.EFlag), 16)
}

// compressionBitsSet counts how many of the Lz4/Zstd/Brotli bits are set.
func compressionBitsSet(cflag byte) int {
	n := 0
	for _, bit := range []byte{0x1, 0x4, 0x8} {
		if cflag&bit != 0 {
			n++
		}
	}
	return n
}

// ParseHeader validates and decodes a 4-byte header string.
func ParseHeader(s string) (Header, error) {
	if len(s) != headerLen || !strings.HasPrefix(s, headerPrefix) {
		return Header{}, errors.Wrapf(ErrInvalidHeader, "header %q must be 4 bytes starting with %q", s, headerPrefix)
	}

	cflag, err := strconv.ParseUint(s[2:3], 16, 8)
	if err != nil {
		return Header{}, errors.Wrapf(ErrInvalidHeader, "cflag nibble %q is not hex", s[2:3])
	}
	eflag, err := strconv.ParseUint(s[3:4], 16, 8)
	if err != nil {
		return Header{}, errors.Wrapf(ErrInvalidHeader, "eflag nibble %q is not hex", s[3:4])
	}

	h := Header{CFlag: byte(cflag), EFlag: byte(eflag)}
	if compressionBitsSet(h.CFlag) > 1 {
		return Header{}, errors.Wrapf(ErrConflictingFlags, "cflag %#x", h.CFlag)
	}
	if h.EFlag&^byte(0x1) != 0 {
		return Header{}, errors.Wrapf(ErrInvalidHeader, "eflag %#x sets reserved bits", h.EFlag)
	}

	return h, nil
}

// Frame composes the canonical wire string from an already-rendered
// header, a radix-encoded body, and a precomputed tag.
func Frame(header string, body string, tag string) string {
	return header + ":" + body + ":" + tag
}

// Unframe splits s into its header, body, and tag pieces. Per spec §4.5,
// a third ':' inside body or tag is not rejected here: the middle slice is
// whatever lies between the first and last ':'. Since neither alphabet
// ever contains ':', this is equivalent to strict two-colon framing for
// any well-formed input.
func Unframe(s string) (header, body, tag string, err error) {
	first := strings.IndexByte(s, ':')
	last := strings.LastIndexByte(s, ':')
	if first < 0 || last < 0 || first >= last {
		return "", "", "", errors.Wrapf(ErrInvalidFormat, "%q", s)
	}

	header = s[:first]
	body = s[first+1 : last]
	tag = s[last+1:]

	if len(header) != headerLen || !strings.HasPrefix(header, headerPrefix) {
		return "", "", "", errors.Wrapf(ErrInvalidHeader, "header %q", header)
	}
	if len(tag) != tagLen {
		return "", "", "", errors.Wrapf(ErrInvalidHeader, "tag %q must be %d characters", tag, tagLen)
	}
	if len(body) == 0 {
		return "", "", "", ErrInvalidBody
	}

	return header, body, tag, nil
}
