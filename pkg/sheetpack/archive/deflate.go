package archive

import (
	"bytes"
	"compress/flate"
)

// Compressor turns a byte sequence into a raw deflate bitstream
// (no zlib or gzip envelope). Implementations must produce output
// that a raw-inflate reader decompresses back to the exact input.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// flateCompressor is the default Compressor, backed by compress/flate.
type flateCompressor struct {
	level int
}

// NewFlateCompressor returns a Compressor producing raw deflate output
// at the given compression level (flate.DefaultCompression for the
// usual trade-off).
func NewFlateCompressor(level int) Compressor {
	return flateCompressor{level: level}
}

func (c flateCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, c.level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
