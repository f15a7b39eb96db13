package uqpack

import (
	"github.com/jontey/uqpack/pkg/checksum"
	"github.com/jontey/uqpack/pkg/compress"
	"github.com/jontey/uqpack/pkg/frame"
	"github.com/jontey/uqpack/pkg/radix"
	"github.com/jontey/uqpack/pkg/serialize"
)

// Decode reverses Encode: it unframes s, verifies the checksum, radix- and
// compression-decodes the body, and deserializes the result into T.
//
// On the serialization choice, the header's MessagePack bit wins over the
// caller's T when the two disagree: T only decides between Raw ([]byte)
// and Utf8String (string) when that bit is unset (spec §9, resolved in
// SPEC_FULL.md §5).
func Decode[T any](s string, opts ...Option) (T, error) {
	var zero T

	o := resolveOptions(opts)

	decompressed, cflag, err := decodeFrame(s, o)
	if err != nil {
		return zero, err
	}

	preferred := preferredSerialization[T](o)
	kind := serialize.KindFromFlags(cflag&0x2 != 0, preferred)

	return serialize.Deserialize[T](decompressed, kind)
}

// DecodeBytes reverses EncodeBytes: it returns the decompressed body
// without attempting any deserialization.
func DecodeBytes(s string, opts ...Option) ([]byte, error) {
	o := resolveOptions(opts)
	decompressed, _, err := decodeFrame(s, o)
	return decompressed, err
}

// decodeFrame runs the shared C5->C1->C3 inverse and returns the
// decompressed body plus the header's raw CFLAG, so callers can finish
// with either a typed Deserialize or a raw passthrough.
func decodeFrame(s string, o options) (decompressed []byte, cflag byte, err error) {
	header, body, tag, err := frame.Unframe(s)
	if err != nil {
		return nil, 0, err
	}

	expected := checksum.Tag([]byte(body), o.key)
	if expected != tag {
		return nil, 0, &ChecksumMismatchError{Expected: expected, Actual: tag}
	}

	h, err := frame.ParseHeader(header)
	if err != nil {
		return nil, 0, err
	}

	alphabetIndex := 0
	if h.EFlag&0x1 != 0 {
		alphabetIndex = 1
	}

	raw, err := radix.FromBase(body, radix.Alphabets[alphabetIndex])
	if err != nil {
		return nil, 0, err
	}

	compressionKind := compress.Kind(h.CFlag &^ 0x2)
	decompressed, err = compress.Decompress(compressionKind, raw)
	if err != nil {
		return nil, 0, err
	}

	return decompressed, h.CFlag, nil
}

// preferredSerialization derives the serialize.Kind consulted when the
// header's MessagePack bit is unset. []byte and string targets imply Raw
// and Utf8String respectively, since no other kind could produce them;
// anything else falls back to o.serialization, the caller's explicit
// WithSerialization choice (spec §9, resolved in SPEC_FULL.md §5).
func preferredSerialization[T any](o options) serialize.Kind {
	var zero T
	switch any(zero).(type) {
	case []byte:
		return serialize.Raw
	case string:
		return serialize.Utf8String
	default:
		return o.serialization
	}
}
