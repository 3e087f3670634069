package rxp

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Writer emits rxpmarker streams: the signature followed by frames. Used by
// the synthetic stream generator and by tests; a real scanner produces these
// streams on its own.
type Writer struct {
	w io.Writer
}

// NewWriter writes the stream signature to w and returns a writer for
// appending frames.
func NewWriter(w io.Writer) (*Writer, error) {
	if _, err := w.Write(streamSignature[:]); err != nil {
		return nil, fmt.Errorf("writing stream signature: %w", err)
	}
	return &Writer{w: w}, nil
}

// WritePoints emits one point-data packet holding points, stamped with the
// device time timestampUS in microseconds. Per-point Time fields are
// ignored; the packet timestamp is authoritative.
func (w *Writer) WritePoints(timestampUS uint32, points []Point) error {
	payload := make([]byte, len(points)*POINT_RECORD_SIZE)
	for i, p := range points {
		encodePoint(payload[i*POINT_RECORD_SIZE:(i+1)*POINT_RECORD_SIZE], p)
	}
	return w.writeFrame(PacketPointData, timestampUS, payload)
}

// WriteInclination emits one housekeeping inclination packet with raw roll
// and pitch in thousandths of a degree.
func (w *Writer) WriteInclination(timestampUS uint32, roll, pitch int32) error {
	var payload [HK_INCL_SIZE]byte
	binary.LittleEndian.PutUint32(payload[0:4], uint32(roll))
	binary.LittleEndian.PutUint32(payload[4:8], uint32(pitch))
	return w.writeFrame(PacketHkIncl, timestampUS, payload[:])
}

// WritePPS emits a pulse-per-second sync marker for the given whole second.
func (w *Writer) WritePPS(timestampUS uint32, second uint32) error {
	var payload [PPS_SIZE]byte
	binary.LittleEndian.PutUint32(payload[:], second)
	return w.writeFrame(PacketPps, timestampUS, payload[:])
}

func (w *Writer) writeFrame(typ uint8, timestampUS uint32, payload []byte) error {
	if len(payload) > 0xFFFF {
		return fmt.Errorf("payload length %d exceeds frame limit", len(payload))
	}
	frame := make([]byte, FRAME_HEADER_SIZE+len(payload))
	putFrameHeader(frame, typ, 0, len(payload), timestampUS)
	copy(frame[FRAME_HEADER_SIZE:], payload)
	if _, err := w.w.Write(frame); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
