package uqpack

import (
	"github.com/jontey/uqpack/pkg/checksum"
	"github.com/jontey/uqpack/pkg/compress"
	"github.com/jontey/uqpack/pkg/frame"
	"github.com/jontey/uqpack/pkg/radix"
	"github.com/jontey/uqpack/pkg/serialize"
	"github.com/pkg/errors"
)

// Encode serializes value, compresses and radix-encodes the result, and
// frames it into a URL-safe string. Defaults to MessagePack serialization
// and LZ4 compression over the Base64-URL alphabet; override with
// WithSerialization, WithCompression, and WithBaseIndex.
//
// This runs the full C4->C3->C1->C5 pipeline (spec §2). For bytes that
// are already serialized, use EncodeBytes to skip C4 entirely.
func Encode(value any, opts ...Option) (string, error) {
	o := resolveOptions(opts)

	serialized, err := serialize.Serialize(value, o.serialization)
	if err != nil {
		return "", errors.Wrap(err, "uqpack: serialize")
	}

	return encodeFrame(serialized, o.compression, serialize.UsesMessagePack(o.serialization), o)
}

// EncodeBytes compresses and radix-encodes data directly, skipping
// serialization (C3->C1->C5 only). This restores the original
// implementation's low-level `encode(data, compressionType, useMessagePack,
// baseIndex)` entry point (see SPEC_FULL.md §4), useful for callers who
// have already produced their own byte encoding.
func EncodeBytes(data []byte, opts ...Option) (string, error) {
	o := resolveOptions(opts)
	return encodeFrame(data, o.compression, false, o)
}

func encodeFrame(serialized []byte, compression compress.Kind, messagePack bool, o options) (string, error) {
	compressed, err := compress.Compress(compression, serialized)
	if err != nil {
		return "", errors.Wrap(err, "uqpack: compress")
	}

	if o.baseIndex < 0 || o.baseIndex > 1 {
		return "", errors.Errorf("uqpack: base_index must be 0 or 1, got %d", o.baseIndex)
	}
	alphabet := radix.Alphabets[o.baseIndex]

	body, err := radix.ToBase(compressed, alphabet)
	if err != nil {
		return "", errors.Wrap(err, "uqpack: radix encode")
	}

	cflag := byte(compression)
	if messagePack {
		cflag |= 0x2
	}
	var eflag byte
	if o.baseIndex == 1 {
		eflag = 0x1
	}
	header := frame.Header{CFlag: cflag, EFlag: eflag}

	tag := checksum.Tag([]byte(body), o.key)

	return frame.Frame(header.String(), body, tag), nil
}
