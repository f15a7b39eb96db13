package compress

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/pkg/errors"
)

const brotliQuality = 11

func compressBrotli(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterOptions(&buf, brotli.WriterOptions{Quality: brotliQuality})
	if _, err := w.Write(data); err != nil {
		return nil, errors.Wrap(ErrCompressionFailed, err.Error())
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(ErrCompressionFailed, err.Error())
	}
	return buf.Bytes(), nil
}

// decompressBrotli reads the streaming decoder into a doubling output
// buffer, mirroring BrotliDecoderDecompressStream's usual driver loop
// (spec §4.3) instead of relying on a single io.ReadAll call.
func decompressBrotli(data []byte) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(data))

	buf := make([]byte, 4096)
	total := 0
	for {
		if total == len(buf) {
			grown := make([]byte, len(buf)*2)
			copy(grown, buf)
			buf = grown
		}
		n, err := r.Read(buf[total:])
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(ErrDecompressionFailed, err.Error())
		}
		if n == 0 {
			break
		}
	}
	return buf[:total], nil
}
