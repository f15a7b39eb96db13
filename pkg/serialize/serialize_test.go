package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawRoundTrip(t *testing.T) {
	in := []byte{0x01, 0x02, 0x03}
	out, err := Serialize(in, Raw)
	require.NoError(t, err)

	back, err := Deserialize[[]byte](out, Raw)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestUtf8StringRoundTrip(t *testing.T) {
	in := "héllo wörld"
	out, err := Serialize(in, Utf8String)
	require.NoError(t, err)

	back, err := Deserialize[string](out, Utf8String)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestMessagePackRoundTrip(t *testing.T) {
	in := map[string]any{
		"a": int64(1),
		"b": []any{int64(1), int64(2), int64(3)},
	}
	out, err := Serialize(in, MessagePack)
	require.NoError(t, err)

	back, err := Deserialize[map[string]any](out, MessagePack)
	require.NoError(t, err)
	assert.Equal(t, in["a"], back["a"])
}

func TestSerializeWrongType(t *testing.T) {
	_, err := Serialize("a string", Raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestKindFromFlags(t *testing.T) {
	assert.Equal(t, MessagePack, KindFromFlags(true, Utf8String))
	assert.Equal(t, Raw, KindFromFlags(false, Raw))
}
