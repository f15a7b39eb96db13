package compress

import (
	"encoding/binary"

	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

// compressLz4 prepends a 4-byte little-endian original-size field ahead of
// an LZ4 block, since the block format alone cannot recover it (spec
// §4.3). The prefix lives inside the radix-encoded body, not the wire
// header.
func compressLz4(data []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(data))
	block := make([]byte, bound)

	var compressor lz4.Compressor
	n, err := compressor.CompressBlock(data, block)
	if err != nil {
		return nil, errors.Wrap(ErrCompressionFailed, err.Error())
	}

	out := make([]byte, 4+n)
	binary.LittleEndian.PutUint32(out, uint32(len(data)))
	copy(out[4:], block[:n])
	return out, nil
}

func decompressLz4(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, ErrTruncatedLz4Prefix
	}

	originalSize := binary.LittleEndian.Uint32(data[:4])
	dst := make([]byte, originalSize)

	n, err := lz4.UncompressBlock(data[4:], dst)
	if err != nil {
		return nil, errors.Wrap(ErrDecompressionFailed, err.Error())
	}
	return dst[:n], nil
}
