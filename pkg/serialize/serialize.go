// Package serialize is the structured-value adapter (spec §4.4): it turns
// a caller's value into bytes and back, and names the transformation
// without inventing any data of its own.
package serialize

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Kind selects how a value is turned into bytes and back.
type Kind byte

const (
	// Raw is the identity transformation on []byte.
	Raw Kind = iota
	// Utf8String encodes/decodes a Go string as its UTF-8 bytes.
	Utf8String
	// MessagePack is canonical MessagePack over a dynamic value tree.
	MessagePack
)

var (
	ErrUnsupportedType       = errors.New("serialize: type not supported by the requested kind")
	ErrDeserializationFailed = errors.New("serialize: deserialization failed")
)

// Serialize turns value into bytes according to kind.
func Serialize(value any, kind Kind) ([]byte, error) {
	switch kind {
	case Raw:
		b, ok := value.([]byte)
		if !ok {
			return nil, errors.Wrapf(ErrUnsupportedType, "Raw requires []byte, got %T", value)
		}
		return b, nil
	case Utf8String:
		s, ok := value.(string)
		if !ok {
			return nil, errors.Wrapf(ErrUnsupportedType, "Utf8String requires string, got %T", value)
		}
		return []byte(s), nil
	case MessagePack:
		b, err := msgpack.Marshal(value)
		if err != nil {
			return nil, errors.Wrap(ErrDeserializationFailed, err.Error())
		}
		return b, nil
	default:
		return nil, errors.Errorf("serialize: unsupported kind %v", kind)
	}
}

// Deserialize turns bytes back into T according to kind. T must match
// kind: []byte for Raw, string for Utf8String, anything msgpack can
// unmarshal into for MessagePack.
func Deserialize[T any](data []byte, kind Kind) (T, error) {
	var zero T
	switch kind {
	case Raw:
		if _, ok := any(zero).([]byte); !ok {
			return zero, errors.Wrapf(ErrUnsupportedType, "Raw requires []byte, got %T", zero)
		}
		out := append([]byte(nil), data...)
		return any(out).(T), nil
	case Utf8String:
		if _, ok := any(zero).(string); !ok {
			return zero, errors.Wrapf(ErrUnsupportedType, "Utf8String requires string, got %T", zero)
		}
		return any(string(data)).(T), nil
	case MessagePack:
		var v T
		if err := msgpack.Unmarshal(data, &v); err != nil {
			return zero, errors.Wrap(ErrDeserializationFailed, err.Error())
		}
		return v, nil
	default:
		return zero, errors.Errorf("serialize: unsupported kind %v", kind)
	}
}

// UsesMessagePack reports whether kind is the MessagePack kind, i.e.
// whether the orchestrator should set CFLAG bit 0x2 for it (spec §4.6).
func UsesMessagePack(kind Kind) bool {
	return kind == MessagePack
}

// KindFromFlags resolves the Open Question in spec §9 ("flag-vs-caller
// disagreement"): if the frame's CFLAG MessagePack bit is set, the header
// wins regardless of what the caller's type would otherwise suggest.
// Otherwise preferred (derived by the caller from the target type T) is
// used.
func KindFromFlags(cflagMessagePackBit bool, preferred Kind) Kind {
	if cflagMessagePackBit {
		return MessagePack
	}
	return preferred
}
