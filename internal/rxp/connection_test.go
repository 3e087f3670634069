package rxp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenConnectionMissingFile(t *testing.T) {
	_, err := OpenConnection(filepath.Join(t.TempDir(), "nope.rxpm"))
	if err == nil {
		t.Fatal("expected error opening missing file")
	}
	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected ConnectionError, got %T: %v", err, err)
	}
}

func TestOpenConnectionBadSignature(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.rxpm")
	if err := os.WriteFile(path, []byte("NOTRXP00some data"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := OpenConnection(path)
	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected ConnectionError for bad signature, got %T: %v", err, err)
	}
}

func TestOpenConnectionFileURI(t *testing.T) {
	path := buildStream(t, func(w *Writer) {
		if err := w.WriteInclination(1000, 100, 200); err != nil {
			t.Fatal(err)
		}
	})

	conn, err := OpenConnection("file://" + path)
	if err != nil {
		t.Fatalf("opening file URI: %v", err)
	}
	if conn.Addr() != "file://"+path {
		t.Errorf("Addr() = %q", conn.Addr())
	}
	if err := conn.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestConnectionCloseIdempotent(t *testing.T) {
	path := buildStream(t, func(w *Writer) {})

	conn, err := OpenConnection(path)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := conn.Close(); err != nil {
			t.Errorf("close %d: %v", i, err)
		}
	}
	if _, err := conn.Read(make([]byte, 1)); err == nil {
		t.Error("expected error reading from closed connection")
	}
}
