package rxp

import (
	"fmt"
	"os"
)

// demultiplexer copies selected raw packets from a stream being read to a
// second rxpmarker file. Frames are copied byte for byte, so the output is
// itself a readable stream.
type demultiplexer struct {
	f     *os.File
	types map[uint8]bool // nil means every type
}

func newDemultiplexer(f *os.File, types []uint8) *demultiplexer {
	d := &demultiplexer{f: f}
	if len(types) > 0 {
		d.types = make(map[uint8]bool, len(types))
		for _, t := range types {
			d.types[t] = true
		}
	}
	return d
}

func (d *demultiplexer) copyFrames(data []byte) error {
	var off int64
	for len(data) > 0 {
		hdr, err := parseFrameHeader(data, off)
		if err != nil {
			return err
		}
		total := FRAME_HEADER_SIZE + hdr.PayloadLen
		if total > len(data) {
			return &DecodeError{Offset: off, Msg: "frame payload exceeds buffer"}
		}
		if d.types == nil || d.types[hdr.Type] {
			if _, err := d.f.Write(data[:total]); err != nil {
				return fmt.Errorf("demultiplexer write: %w", err)
			}
		}
		data = data[total:]
		off += int64(total)
	}
	return nil
}

func (d *demultiplexer) close() error {
	return d.f.Close()
}
