package rxp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// buildStream writes frames through fn to a file in a test temp dir and
// returns its path.
func buildStream(t *testing.T, fn func(w *Writer)) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.rxpm")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating stream file: %v", err)
	}
	w, err := NewWriter(f)
	if err != nil {
		t.Fatalf("writing stream signature: %v", err)
	}
	fn(w)
	if err := f.Close(); err != nil {
		t.Fatalf("closing stream file: %v", err)
	}
	return path
}

// bufferWithFrames encodes frames through fn and returns them, without the
// stream signature, as a dispatchable buffer.
func bufferWithFrames(t *testing.T, fn func(w *Writer)) *Buffer {
	t.Helper()
	var bb bytes.Buffer
	w, err := NewWriter(&bb)
	if err != nil {
		t.Fatalf("writing stream signature: %v", err)
	}
	fn(w)
	data := bb.Bytes()[len(streamSignature):]
	var buf Buffer
	copy(buf.grow(len(data)), data)
	return &buf
}

// testPoint returns a deterministic point for index i. Every fourth point is
// left outside the PPS timeframe so sync filtering has something to drop.
func testPoint(i int) Point {
	return Point{
		X:            float32(i),
		Y:            float32(i) * 2,
		Z:            float32(i) * 3,
		Amplitude:    18.5,
		Reflectance:  -1.25,
		Deviation:    uint16(i),
		Echo:         EchoType(i % 4),
		FreshPPS:     true,
		PPSTimeframe: i%4 != 0,
		Facet:        uint8(i % 4),
	}
}
