// Package compress is the uniform compression adapter (spec §4.3): one
// Compress/Decompress pair over a closed set of compression kinds, each
// wrapping a third-party primitive that knows nothing about the frame
// format around it.
package compress

import "github.com/pkg/errors"

// Kind is a compression algorithm selector. Its numeric value is the bit
// set in a frame's CFLAG nibble (spec §6.1), so at most one Kind other
// than None is ever active per message.
type Kind byte

const (
	None   Kind = 0x0
	Lz4    Kind = 0x1
	Zstd   Kind = 0x4
	Brotli Kind = 0x8
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Lz4:
		return "lz4"
	case Zstd:
		return "zstd"
	case Brotli:
		return "brotli"
	default:
		return "unknown"
	}
}

var (
	ErrCompressionFailed   = errors.New("compress: compression failed")
	ErrDecompressionFailed = errors.New("compress: decompression failed")
	ErrTruncatedLz4Prefix  = errors.New("compress: lz4 flagged but body is shorter than the 4-byte length prefix")
	ErrZstdSizeUnknown     = errors.New("compress: zstd frame is missing its content-size field")
	ErrLengthMismatch      = errors.New("compress: decompressed length does not match the size recorded at encode time")
)

// Compress compresses data under kind. For None it returns data unchanged.
func Compress(kind Kind, data []byte) ([]byte, error) {
	switch kind {
	case None:
		return data, nil
	case Lz4:
		return compressLz4(data)
	case Zstd:
		return compressZstd(data)
	case Brotli:
		return compressBrotli(data)
	default:
		return nil, errors.Errorf("compress: unsupported kind %v", kind)
	}
}

// Decompress reverses Compress. For None it returns data unchanged.
func Decompress(kind Kind, data []byte) ([]byte, error) {
	switch kind {
	case None:
		return data, nil
	case Lz4:
		return decompressLz4(data)
	case Zstd:
		return decompressZstd(data)
	case Brotli:
		return decompressBrotli(data)
	default:
		return nil, errors.Errorf("compress: unsupported kind %v", kind)
	}
}
