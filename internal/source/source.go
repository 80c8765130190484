// Package source loads notation documents from files or stdin and writes
// rendered output, handling gzip, zstd and xz compression transparently.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

type Codec int

const (
	Plain Codec = iota
	Gzip
	Zstd
	Xz
)

func (c Codec) String() string {
	switch c {
	case Plain:
		return "plain"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case Xz:
		return "xz"
	default:
		return "unknown"
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// Detect identifies the compression of data from its leading magic bytes.
func Detect(data []byte) Codec {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return Gzip
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	case bytes.HasPrefix(data, xzMagic):
		return Xz
	}
	return Plain
}

// CodecForPath picks the output codec from a file name suffix.
func CodecForPath(path string) Codec {
	switch filepath.Ext(path) {
	case ".gz":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".xz":
		return Xz
	}
	return Plain
}

// Decode returns data decompressed according to its magic bytes, along with
// the codec that was detected.
func Decode(data []byte) ([]byte, Codec, error) {
	codec := Detect(data)
	switch codec {
	case Gzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, codec, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, codec, fmt.Errorf("gzip: %w", err)
		}
		return out, codec, nil

	case Zstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, codec, fmt.Errorf("zstd: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, codec, fmt.Errorf("zstd: %w", err)
		}
		return out, codec, nil

	case Xz:
		xr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, codec, fmt.Errorf("xz: %w", err)
		}
		out, err := io.ReadAll(xr)
		if err != nil {
			return nil, codec, fmt.Errorf("xz: %w", err)
		}
		return out, codec, nil
	}
	return data, Plain, nil
}

// Read loads path, or stdin when path is "" or "-", and decompresses it.
func Read(path string, stdin io.Reader) (string, Codec, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		if stdin == nil {
			return "", Plain, fmt.Errorf("reading stdin: no reader")
		}
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", Plain, fmt.Errorf("reading %s: %w", displayName(path), err)
	}

	out, codec, err := Decode(data)
	if err != nil {
		return "", codec, fmt.Errorf("decompressing %s: %w", displayName(path), err)
	}
	return string(out), codec, nil
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}
	return path
}

// NewWriter wraps w so that what is written to it is compressed with codec.
// Closing the returned writer flushes the compressor but leaves w open.
func NewWriter(w io.Writer, codec Codec) (io.WriteCloser, error) {
	switch codec {
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return enc, nil
	case Xz:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("xz: %w", err)
		}
		return xw, nil
	case Plain:
		return nopCloser{w}, nil
	}
	return nil, fmt.Errorf("unknown codec %d", codec)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

type fileWriter struct {
	io.WriteCloser
	file *os.File
}

func (f *fileWriter) Close() error {
	if err := f.WriteCloser.Close(); err != nil {
		f.file.Close()
		return err
	}
	return f.file.Close()
}

// Create opens path for writing, compressing by its suffix (.gz, .zst, .xz).
func Create(path string) (io.WriteCloser, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	w, err := NewWriter(file, CodecForPath(path))
	if err != nil {
		file.Close()
		return nil, err
	}
	return &fileWriter{WriteCloser: w, file: file}, nil
}
