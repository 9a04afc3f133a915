package readers

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Encoding is the detected compression of an input stream.
type Encoding string

const (
	EncodingNone Encoding = "none"
	EncodingGzip Encoding = "gzip"
	EncodingZstd Encoding = "zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

type decompressingReader struct {
	io.Reader
	closeFn func() error
}

func (r *decompressingReader) Close() error {
	if r.closeFn == nil {
		return nil
	}
	return r.closeFn()
}

// NewDecompressingReader sniffs the magic bytes of r and transparently unwraps
// gzip or zstd streams. Anything else is passed through unchanged. Closing the
// returned reader releases the decoder but does not close r.
func NewDecompressingReader(r io.Reader) (io.ReadCloser, Encoding, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, EncodingNone, fmt.Errorf("failed to sniff input: %w", err)
	}

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, EncodingGzip, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return &decompressingReader{Reader: gz, closeFn: gz.Close}, EncodingGzip, nil
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, EncodingZstd, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		return &decompressingReader{Reader: zr, closeFn: func() error { zr.Close(); return nil }}, EncodingZstd, nil
	default:
		return &decompressingReader{Reader: br}, EncodingNone, nil
	}
}
