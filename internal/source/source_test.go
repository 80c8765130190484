package source

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const doc = "{server={host=example.org, port=8080}, tags=(a, b)}"

func compress(t *testing.T, codec Codec, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, codec)
	if err != nil {
		t.Fatalf("NewWriter(%v): %v", codec, err)
	}
	if _, err := w.Write([]byte(text)); err != nil {
		t.Fatalf("Write(%v): %v", codec, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close(%v): %v", codec, err)
	}
	return buf.Bytes()
}

func TestDecodeEveryCodec(t *testing.T) {
	for _, codec := range []Codec{Plain, Gzip, Zstd, Xz} {
		t.Run(codec.String(), func(t *testing.T) {
			data := compress(t, codec, doc)
			if got := Detect(data); got != codec {
				t.Errorf("Expected codec %v, detected %v", codec, got)
			}

			out, detected, err := Decode(data)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if detected != codec {
				t.Errorf("Expected codec %v, got %v", codec, detected)
			}
			if string(out) != doc {
				t.Errorf("Expected %q, got %q", doc, out)
			}
		})
	}
}

func TestDecodeCorrupt(t *testing.T) {
	data := append([]byte{0x1f, 0x8b}, []byte("not really gzip")...)
	if _, _, err := Decode(data); err == nil {
		t.Error("Expected error for corrupt gzip data")
	}
}

func TestCodecForPath(t *testing.T) {
	tests := map[string]Codec{
		"out.txt":      Plain,
		"out":          Plain,
		"out.txt.gz":   Gzip,
		"out.zst":      Zstd,
		"out.txt.zstd": Zstd,
		"out.xz":       Xz,
	}
	for path, expected := range tests {
		if got := CodecForPath(path); got != expected {
			t.Errorf("CodecForPath(%q): expected %v, got %v", path, expected, got)
		}
	}
}

func TestReadFileAndStdin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.box.zst")
	if err := os.WriteFile(path, compress(t, Zstd, doc), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	text, codec, err := Read(path, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if codec != Zstd || text != doc {
		t.Errorf("Read(%s) = %q (%v)", path, text, codec)
	}

	text, codec, err = Read("-", strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if codec != Plain || text != doc {
		t.Errorf("Read(stdin) = %q (%v)", text, codec)
	}

	if _, _, err := Read(filepath.Join(dir, "missing"), nil); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestCreateCompressesBySuffix(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.txt", "out.gz", "out.zst", "out.xz"} {
		path := filepath.Join(dir, name)
		w, err := Create(path)
		if err != nil {
			t.Fatalf("Create(%s): %v", name, err)
		}
		if _, err := w.Write([]byte(doc)); err != nil {
			t.Fatalf("Write(%s): %v", name, err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close(%s): %v", name, err)
		}

		text, codec, err := Read(path, nil)
		if err != nil {
			t.Fatalf("Read(%s): %v", name, err)
		}
		if codec != CodecForPath(path) {
			t.Errorf("%s: expected codec %v, got %v", name, CodecForPath(path), codec)
		}
		if text != doc {
			t.Errorf("%s: expected %q, got %q", name, doc, text)
		}
	}
}
