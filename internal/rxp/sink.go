package rxp

import (
	"encoding/binary"
	"fmt"

	"github.com/banshee-data/rxp.report/internal/monitoring"
)

// RecordSink receives the decoded contents of one buffer and accumulates
// typed records. A sink is stateful: Dispatch appends to the accumulation
// list, Clear empties it. Whether Clear runs between dispatches is the
// orchestrator's choice and distinguishes incremental streaming from batch
// extraction.
type RecordSink interface {
	// Dispatch parses every frame in buf and appends each matching record,
	// in the order the frames appear, copying all fields out of the buffer.
	Dispatch(buf *Buffer) error

	// Clear empties the accumulation list. Without it records pile up
	// across cycles for the lifetime of the sink.
	Clear()
}

// eventHandler receives per-packet callbacks from the shared dispatcher.
// The sink variants implement it; pointcloud invokes it.
type eventHandler interface {
	onPointData(payload []byte)
	onHkIncl(roll, pitch int32)
}

// pointcloud is the dispatch state shared by all sink variants: it walks the
// frames in a buffer, maintains the running device time, and hands each
// event to the variant embedding it. The time a callback observes is always
// the time established for that frame before the callback runs.
type pointcloud struct {
	syncToPPS bool
	time      float64 // device time of the current frame, seconds
}

func newPointcloud(syncToPPS bool) pointcloud {
	return pointcloud{syncToPPS: syncToPPS}
}

func (pc *pointcloud) dispatch(buf *Buffer, h eventHandler) error {
	data := buf.Bytes()
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
		payload := data[FRAME_HEADER_SIZE:total]

		// Update the clock before any callback fires.
		pc.time = float64(hdr.Timestamp) * TIME_RESOLUTION

		switch hdr.Type {
		case PacketPointData:
			if len(payload)%POINT_RECORD_SIZE != 0 {
				return &DecodeError{Offset: off, Msg: fmt.Sprintf("point payload length %d not a record multiple", len(payload))}
			}
			h.onPointData(payload)
		case PacketHkIncl:
			if len(payload) != HK_INCL_SIZE {
				return &DecodeError{Offset: off, Msg: fmt.Sprintf("inclination payload length %d", len(payload))}
			}
			roll := int32(binary.LittleEndian.Uint32(payload[0:4]))
			pitch := int32(binary.LittleEndian.Uint32(payload[4:8]))
			h.onHkIncl(roll, pitch)
		case PacketPps:
			// Marker only: the per-point flag bits carry the timeframe.
			if len(payload) != PPS_SIZE {
				return &DecodeError{Offset: off, Msg: fmt.Sprintf("pps payload length %d", len(payload))}
			}
		default:
			// Unknown packet type: the framing already bounded it, skip.
			monitoring.Logf("rxp: skipping unknown packet type 0x%02X (%d bytes)", hdr.Type, len(payload))
		}

		data = data[total:]
		off += int64(total)
	}
	return nil
}

// InclinationSink accumulates housekeeping inclination samples. Raw roll and
// pitch arrive as scaled integers and are converted to degrees on append.
type InclinationSink struct {
	pointcloud
	samples []InclinationSample
}

// NewInclinationSink returns an empty sink. syncToPPS is carried for parity
// with the point variant; inclination readings are never PPS-filtered.
func NewInclinationSink(syncToPPS bool) *InclinationSink {
	return &InclinationSink{pointcloud: newPointcloud(syncToPPS)}
}

// Dispatch implements RecordSink.
func (s *InclinationSink) Dispatch(buf *Buffer) error { return s.pointcloud.dispatch(buf, s) }

func (s *InclinationSink) onPointData([]byte) {}

func (s *InclinationSink) onHkIncl(roll, pitch int32) {
	// s.time was set by the dispatcher for this frame before the callback.
	s.samples = append(s.samples, InclinationSample{
		Time:  s.time,
		Roll:  float32(float64(roll) * INCL_SCALE),
		Pitch: float32(float64(pitch) * INCL_SCALE),
	})
}

// Clear implements RecordSink.
func (s *InclinationSink) Clear() { s.samples = s.samples[:0] }

// Records returns the samples accumulated since the last Clear. The slice is
// owned by the sink and only valid until the next Dispatch or Clear.
func (s *InclinationSink) Records() []InclinationSample { return s.samples }

// TakeRecords moves the accumulated list out of the sink. Subsequent calls
// return nil until new records are dispatched.
func (s *InclinationSink) TakeRecords() []InclinationSample {
	out := s.samples
	s.samples = nil
	return out
}

// PointSink accumulates point returns. With syncToPPS set, returns whose
// time is not in the PPS timeframe are dropped during dispatch.
type PointSink struct {
	pointcloud
	points []Point
}

// NewPointSink returns an empty sink.
func NewPointSink(syncToPPS bool) *PointSink {
	return &PointSink{pointcloud: newPointcloud(syncToPPS)}
}

// Dispatch implements RecordSink.
func (s *PointSink) Dispatch(buf *Buffer) error { return s.pointcloud.dispatch(buf, s) }

func (s *PointSink) onHkIncl(int32, int32) {}

func (s *PointSink) onPointData(payload []byte) {
	for off := 0; off < len(payload); off += POINT_RECORD_SIZE {
		pt := decodePoint(payload[off:off+POINT_RECORD_SIZE], s.time)
		if s.syncToPPS && !pt.PPSTimeframe {
			continue
		}
		s.points = append(s.points, pt)
	}
}

// Clear implements RecordSink.
func (s *PointSink) Clear() { s.points = s.points[:0] }

// Records returns the points accumulated since the last Clear. The slice is
// owned by the sink and only valid until the next Dispatch or Clear.
func (s *PointSink) Records() []Point { return s.points }

// TakeRecords moves the accumulated list out of the sink. Subsequent calls
// return nil until new records are dispatched.
func (s *PointSink) TakeRecords() []Point {
	out := s.points
	s.points = nil
	return out
}
