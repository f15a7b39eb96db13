package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameUnframeRoundTrip(t *testing.T) {
	header := Header{CFlag: 0x3, EFlag: 0x0}
	s := Frame(header.String(), "A", "zz")

	gotHeader, gotBody, gotTag, err := Unframe(s)
	require.NoError(t, err)
	assert.Equal(t, header.String(), gotHeader)
	assert.Equal(t, "A", gotBody)
	assert.Equal(t, "zz", gotTag)
}

func TestUnframeThreeColons(t *testing.T) {
	// body happens to contain extra colons; still parses since neither
	// alphabet includes ':' in real frames, but Unframe itself only cares
	// about first/last separator position.
	header, body, tag, err := Unframe("PX00:a:b:zz")
	require.NoError(t, err)
	assert.Equal(t, "PX00", header)
	assert.Equal(t, "a:b", body)
	assert.Equal(t, "zz", tag)
}

func TestUnframeInvalidFormat(t *testing.T) {
	_, _, _, err := Unframe("no colons here")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestUnframeEmptyBody(t *testing.T) {
	_, _, _, err := Unframe("PX00::zz")
	assert.ErrorIs(t, err, ErrInvalidBody)
}

func TestUnframeBadHeaderPrefix(t *testing.T) {
	_, _, _, err := Unframe("UQ00:A:zz")
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestUnframeBadTagLength(t *testing.T) {
	_, _, _, err := Unframe("PX00:A:z")
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestParseHeader(t *testing.T) {
	h, err := ParseHeader("PX30")
	require.NoError(t, err)
	assert.Equal(t, byte(0x3), h.CFlag)
	assert.Equal(t, byte(0x0), h.EFlag)
}

func TestParseHeaderConflictingFlags(t *testing.T) {
	_, err := ParseHeader("PX50") // Lz4|Zstd
	assert.ErrorIs(t, err, ErrConflictingFlags)
}

func TestParseHeaderReservedEflagBits(t *testing.T) {
	_, err := ParseHeader("PX02")
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestParseHeaderNotHex(t *testing.T) {
	_, err := ParseHeader("PXGG")
	assert.ErrorIs(t, err, ErrInvalidHeader)
}
