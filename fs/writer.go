package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/gmdocs"
)

// EncodeManual writes m as indented JSON. Map keys are sorted by the
// encoder, so identical manuals always encode to identical bytes.
func EncodeManual(w io.Writer, m *gmdocs.Manual) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(m)
}

// Digest returns the xxhash of the encoded manual as hex.
func Digest(m *gmdocs.Manual) (string, error) {
	var buf bytes.Buffer
	if err := EncodeManual(&buf, m); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(buf.Bytes())), nil
}

// Ensure Writer implements gmdocs.ManualWriter at compile time.
var _ gmdocs.ManualWriter = (*Writer)(nil)

// Writer writes the manual as JSON to a file, or to stdout when no path
// is set. File output is atomic: the document is written next to the
// target and renamed into place.
type Writer struct {
	path   string
	stdout io.Writer
}

// NewWriter creates a new Writer. An empty path selects stdout.
func NewWriter(path string, stdout io.Writer) *Writer {
	return &Writer{path: path, stdout: stdout}
}

// WriteManual encodes m completely before anything is written.
func (w *Writer) WriteManual(ctx context.Context, m *gmdocs.Manual) error {
	var buf bytes.Buffer
	if err := EncodeManual(&buf, m); err != nil {
		return fmt.Errorf("encode manual: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if w.path == "" {
		_, err := w.stdout.Write(buf.Bytes())
		return err
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, w.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
