package compress

import (
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

func compressZstd(data []byte) ([]byte, error) {
	// Single-segment frames always carry Frame_Content_Size, and zero frames
	// give an empty input a real frame header instead of no output at all.
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedFastest),
		zstd.WithSingleSegment(true),
		zstd.WithZeroFrames(true))
	if err != nil {
		return nil, errors.Wrap(ErrCompressionFailed, err.Error())
	}
	defer enc.Close()

	out := enc.EncodeAll(data, nil)

	// Cross-check the frame's own content-size field against what we fed
	// in, guarding against a broken encoder configuration rather than an
	// adversary (spec §4.3).
	size, known, err := zstdFrameContentSize(out)
	if err != nil {
		return nil, errors.Wrap(ErrCompressionFailed, err.Error())
	}
	if !known {
		return nil, ErrZstdSizeUnknown
	}
	if size != uint64(len(data)) {
		return nil, ErrLengthMismatch
	}

	return out, nil
}

func decompressZstd(data []byte) ([]byte, error) {
	size, known, err := zstdFrameContentSize(data)
	if err != nil {
		return nil, errors.Wrap(ErrDecompressionFailed, err.Error())
	}
	if !known {
		return nil, ErrZstdSizeUnknown
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.Wrap(ErrDecompressionFailed, err.Error())
	}
	defer dec.Close()

	dst := make([]byte, 0, size)
	out, err := dec.DecodeAll(data, dst)
	if err != nil {
		return nil, errors.Wrap(ErrDecompressionFailed, err.Error())
	}
	if uint64(len(out)) != size {
		return nil, ErrLengthMismatch
	}
	return out, nil
}

// zstdFrameContentSize recovers a zstd frame's Frame_Content_Size field via
// the library's own header decoder (spec §4.3/§6.2's ZSTD_getFrameContentSize
// equivalent), without paying for a full decompression. known is false when
// the frame legitimately omits the field (single-pass streaming encoders may
// do this); this library's own encoder never produces such frames.
func zstdFrameContentSize(data []byte) (size uint64, known bool, err error) {
	var hdr zstd.Header
	if err := hdr.Decode(data); err != nil {
		return 0, false, errors.Wrap(err, "zstd: decode frame header")
	}
	if !hdr.HasFCS {
		return 0, false, nil
	}
	return hdr.FrameContentSize, true, nil
}
