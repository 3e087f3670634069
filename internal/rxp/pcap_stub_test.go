//go:build !pcap
// +build !pcap

package rxp

import (
	"context"
	"strings"
	"testing"
)

func TestReadPCAPFileStub(t *testing.T) {
	sink := NewInclinationSink(false)
	err := ReadPCAPFile(context.Background(), "capture.pcap", 2368, sink)
	if err == nil {
		t.Fatal("expected error from stub implementation")
	}
	if !strings.Contains(err.Error(), "PCAP support not enabled") {
		t.Errorf("unexpected stub error: %v", err)
	}
}
