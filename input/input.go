// Package input reads subject and pattern sequences from line-oriented
// files, decompressing them transparently.
//
// One line is one string. A line equal to the configured NA token is a
// missing value. Lines are not validated here: invalid UTF-8 is reported by
// the locate call that consumes them.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/coregx/fixedloc/container"
)

// MaxLineSize is the longest line ReadLines accepts.
const MaxLineSize = 64 << 20

// ErrLineTooLong is returned when a line exceeds MaxLineSize.
var ErrLineTooLong = errors.New("input: line too long")

// Compression identifies a stream codec.
type Compression int

const (
	// None is an uncompressed stream.
	None Compression = iota
	// Gzip is a gzip stream (.gz).
	Gzip
	// Zstd is a zstandard stream (.zst, .zstd).
	Zstd
	// LZ4 is an lz4 frame stream (.lz4).
	LZ4
)

// String returns the codec name.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

// CompressionFor returns the codec implied by the extension of path.
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

// NewReader wraps r with a decompressor for c. Closing the result releases
// the decompressor, not r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("input: gzip: %w", err)
		}
		return zr, nil
	case Zstd:
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("input: zstd: %w", err)
		}
		return zstdCloser{zr}, nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("input: unknown compression %v", c)
	}
}

type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

type fileReader struct {
	io.ReadCloser
	f *os.File
}

func (r fileReader) Close() error {
	err := r.ReadCloser.Close()
	if cerr := r.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Open opens path for reading, decompressing according to its extension.
// The path "-" reads standard input uncompressed.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(f, CompressionFor(path))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fileReader{ReadCloser: r, f: f}, nil
}

// ReadLines reads r line by line. A trailing "\r" is stripped. Lines equal
// to naToken become NA; an empty naToken disables NA detection.
func ReadLines(r io.Reader, naToken string) ([]container.Str, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), MaxLineSize)

	var out []container.Str
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if naToken != "" && line == naToken {
			out = append(out, container.NA())
			continue
		}
		out = append(out, container.String(line))
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d exceeds %d bytes", ErrLineTooLong, len(out)+1, MaxLineSize)
		}
		return nil, err
	}
	return out, nil
}

// ReadFile opens path and reads its lines.
func ReadFile(path, naToken string) ([]container.Str, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	lines, err := ReadLines(r, naToken)
	if cerr := r.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}
