package uqpack

import (
	"strings"
	"testing"

	"github.com/jontey/uqpack/pkg/checksum"
	"github.com/jontey/uqpack/pkg/compress"
	"github.com/jontey/uqpack/pkg/serialize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1 — empty bytes.
func TestScenarioEmptyBytes(t *testing.T) {
	s, err := Encode([]byte{}, WithCompression(compress.None), WithSerialization(serialize.Raw))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "PX00:A:"))

	back, err := Decode[[]byte](s)
	require.NoError(t, err)
	assert.Equal(t, []byte{}, back)
}

// S2 — single zero byte.
func TestScenarioSingleZeroByte(t *testing.T) {
	s, err := Encode([]byte{0x00}, WithCompression(compress.None), WithSerialization(serialize.Raw))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "PX00:A:"))

	back, err := Decode[[]byte](s)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, back)
}

// S3 — ASCII "hi".
func TestScenarioASCIIHi(t *testing.T) {
	s, err := Encode([]byte("hi"), WithCompression(compress.None), WithSerialization(serialize.Raw))
	require.NoError(t, err)

	back, err := Decode[[]byte](s)
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), back)
}

// S4 — JSON round-trip, LZ4.
func TestScenarioJSONRoundTripLZ4(t *testing.T) {
	in := map[string]any{
		"a": int64(1),
		"b": []any{int64(1), int64(2), int64(3)},
	}
	s, err := Encode(in, WithCompression(compress.Lz4), WithSerialization(serialize.MessagePack))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "PX30:"))

	back, err := Decode[map[string]any](s)
	require.NoError(t, err)
	assert.Equal(t, in["a"], back["a"])
}

// S5 — tamper: flip a body character.
func TestScenarioTamper(t *testing.T) {
	s, err := Encode("hello world", WithCompression(compress.None), WithSerialization(serialize.Utf8String))
	require.NoError(t, err)

	tampered := tamperBodyChar(t, s)

	_, err = Decode[string](tampered)
	require.Error(t, err)
}

// S6 — wrong alphabet: a body containing a character outside Base64-URL
// must fail at the radix-decode step, not get silently misread. Flipping
// eflag alone isn't reliable here, since every character of a Base64-URL
// body also belongs to Base70 (spec §9); instead build a frame whose body
// contains an invalid character and whose tag was computed over that exact
// body, so the checksum check passes and decode reaches radix.FromBase.
func TestScenarioWrongAlphabetChar(t *testing.T) {
	s, err := Encode("hello world", WithCompression(compress.None), WithSerialization(serialize.Utf8String))
	require.NoError(t, err)

	header, body, _, err := splitFrame(s)
	require.NoError(t, err)
	require.NotEmpty(t, body)

	badBody := "~" + body[1:]
	badTag := checksum.Tag([]byte(badBody), checksum.DefaultKey)

	tampered := header + ":" + badBody + ":" + badTag
	_, err = Decode[string](tampered)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestEncodeBytesDecodeBytes(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0xff}
	s, err := EncodeBytes(payload, WithCompression(compress.Zstd))
	require.NoError(t, err)

	back, err := DecodeBytes(s)
	require.NoError(t, err)
	assert.Equal(t, payload, back)
}

func TestDecodeBase70(t *testing.T) {
	s, err := Encode("round trip through base70", WithCompression(compress.None), WithSerialization(serialize.Utf8String), WithBaseIndex(1))
	require.NoError(t, err)

	header, _, _, err := splitFrame(s)
	require.NoError(t, err)
	assert.Equal(t, "PX01", header)

	back, err := Decode[string](s)
	require.NoError(t, err)
	assert.Equal(t, "round trip through base70", back)
}

func TestChecksumMismatchReportsBothTags(t *testing.T) {
	s, err := Encode("x", WithCompression(compress.None), WithSerialization(serialize.Utf8String))
	require.NoError(t, err)

	header, body, tag, err := splitFrame(s)
	require.NoError(t, err)
	badTag := "00"
	if tag == badTag {
		badTag = "01"
	}
	_, err = Decode[string](header + ":" + body + ":" + badTag)
	require.Error(t, err)

	var mismatch *ChecksumMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, badTag, mismatch.Actual)
	assert.NotEqual(t, mismatch.Expected, mismatch.Actual)
}

func splitFrame(s string) (header, body, tag string, err error) {
	first := strings.IndexByte(s, ':')
	last := strings.LastIndexByte(s, ':')
	return s[:first], s[first+1 : last], s[last+1:], nil
}

func tamperBodyChar(t *testing.T, s string) string {
	t.Helper()
	header, body, tag, err := splitFrame(s)
	require.NoError(t, err)
	require.NotEmpty(t, body)

	chars := []byte(body)
	// Pick a replacement character guaranteed to differ from the original.
	for _, c := range []byte("AB") {
		if c != chars[0] {
			chars[0] = c
			break
		}
	}
	return header + ":" + string(chars) + ":" + tag
}
