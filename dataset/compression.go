package dataset

import (
	"compress/gzip"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// nopReadCloser wraps decompressors that expose no Close of their own.
type nopReadCloser struct {
	io.Reader
}

func (nopReadCloser) Close() error { return nil }

// Returns a decompressing reader according to file extension. Unknown
// extensions are treated as plain text.
func newDecompressReader(reader io.Reader, ext string) (io.ReadCloser, error) {
	switch ext {
	case ".br":
		return nopReadCloser{brotli.NewReader(reader)}, nil
	case ".gz":
		gzReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %s", err)
		}
		return gzReader, nil
	case ".zst":
		zstReader, err := zstd.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream: %s", err)
		}
		return zstReader.IOReadCloser(), nil
	default:
		return nopReadCloser{reader}, nil
	}
}

// nopWriteCloser passes writes through for uncompressed output files.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Returns a compressing writer according to file extension.
func newCompressWriter(writer io.Writer, ext string) (io.WriteCloser, error) {
	switch ext {
	case ".br":
		return brotli.NewWriter(writer), nil
	case ".gz":
		return gzip.NewWriter(writer), nil
	case ".zst":
		zstWriter, err := zstd.NewWriter(writer)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream: %s", err)
		}
		return zstWriter, nil
	default:
		return nopWriteCloser{writer}, nil
	}
}
