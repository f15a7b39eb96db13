package uqpack

import (
	"github.com/jontey/uqpack/pkg/checksum"
	"github.com/jontey/uqpack/pkg/compress"
	"github.com/jontey/uqpack/pkg/serialize"
)

type options struct {
	compression   compress.Kind
	serialization serialize.Kind
	baseIndex     int
	key           checksum.Key
}

func defaultOptions() options {
	return options{
		compression:   compress.Lz4,
		serialization: serialize.MessagePack,
		baseIndex:     0,
		key:           checksum.DefaultKey,
	}
}

// Option configures a single Encode or Decode call.
type Option func(*options)

// WithCompression selects the compression kind used on encode. Ignored by
// Decode, which always reads the kind back out of the frame header.
func WithCompression(kind compress.Kind) Option {
	return func(o *options) { o.compression = kind }
}

// WithSerialization selects the serialization kind used on encode. On
// decode it is only consulted as a fallback when the header's MessagePack
// bit is unset (spec §9's "trust the header" policy).
func WithSerialization(kind serialize.Kind) Option {
	return func(o *options) { o.serialization = kind }
}

// WithBaseIndex selects the radix alphabet: 0 for Base64-URL (default),
// 1 for Base70. Ignored by Decode, which reads the alphabet back out of
// the frame header's EFLAG bit.
func WithBaseIndex(index int) Option {
	return func(o *options) { o.baseIndex = index }
}

// WithKey overrides the SipHash key used to compute and verify the tag.
// Interoperating with another UQPack build requires agreeing on this key
// out of band (spec §9, "key as policy, not secret").
func WithKey(key checksum.Key) Option {
	return func(o *options) { o.key = key }
}

func resolveOptions(opts []Option) options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
