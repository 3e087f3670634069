package rxp

import (
	"fmt"
	"os"
)

// stream is the orchestrator shared by the typed stream variants: one
// connection, one decoder, one sink, one reusable buffer. Not safe for
// concurrent use.
type stream struct {
	conn   *Connection
	dec    *Decoder
	buf    Buffer
	sink   RecordSink
	dmx    *demultiplexer
	closed bool
}

func openStream(addr string, sink RecordSink) (*stream, error) {
	conn, err := OpenConnection(addr)
	if err != nil {
		return nil, err
	}
	return &stream{conn: conn, dec: NewDecoder(conn), sink: sink}, nil
}

// EndOfInput reports whether the decoder has consumed the whole source.
func (s *stream) EndOfInput() bool { return s.dec.EndOfInput() }

// Read advances the stream by one cycle: the sink is cleared, the decoder
// frames the next packet into the buffer, and the sink dispatches it.
// Calling Read once EndOfInput reports true is a contract violation and
// fails loudly rather than returning empty.
func (s *stream) Read() error {
	if s.closed {
		return &ContractViolation{Op: "Read", Msg: "stream is closed"}
	}
	if s.dec.EndOfInput() {
		return &ContractViolation{Op: "Read", Msg: "read past end of input"}
	}
	s.sink.Clear()
	if err := s.dec.Get(&s.buf); err != nil {
		return err
	}
	if s.dmx != nil {
		if err := s.dmx.copyFrames(s.buf.Bytes()); err != nil {
			return err
		}
	}
	return s.sink.Dispatch(&s.buf)
}

// AddDemultiplexer copies every packet whose type is in types to a second
// rxpmarker file at path as the stream is read. With no types given, every
// packet is copied.
func (s *stream) AddDemultiplexer(path string, types ...uint8) error {
	if s.dmx != nil {
		return &ContractViolation{Op: "AddDemultiplexer", Msg: "demultiplexer already attached"}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating demultiplexer output: %w", err)
	}
	if _, err := f.Write(streamSignature[:]); err != nil {
		f.Close()
		return fmt.Errorf("writing demultiplexer signature: %w", err)
	}
	s.dmx = newDemultiplexer(f, types)
	return nil
}

// Close releases the connection (and any demultiplexer output) exactly once.
// Safe to call repeatedly and regardless of whether iteration finished.
func (s *stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var dmxErr error
	if s.dmx != nil {
		dmxErr = s.dmx.close()
	}
	if err := s.conn.Close(); err != nil {
		return err
	}
	return dmxErr
}

// PointStream incrementally decodes point returns from an rxpmarker source.
type PointStream struct {
	stream
	sink *PointSink
}

// OpenPointStream opens addr for incremental point extraction. syncToPPS
// drops points whose time is not in the PPS timeframe.
func OpenPointStream(addr string, syncToPPS bool) (*PointStream, error) {
	sink := NewPointSink(syncToPPS)
	st, err := openStream(addr, sink)
	if err != nil {
		return nil, err
	}
	return &PointStream{stream: *st, sink: sink}, nil
}

// Records returns the points found by the most recent Read. The slice is
// only valid until the next Read; the points themselves are owned copies.
func (s *PointStream) Records() []Point { return s.sink.Records() }

// InclinationStream incrementally decodes housekeeping inclination samples
// from an rxpmarker source.
type InclinationStream struct {
	stream
	sink *InclinationSink
}

// OpenInclinationStream opens addr for incremental inclination extraction.
func OpenInclinationStream(addr string, syncToPPS bool) (*InclinationStream, error) {
	sink := NewInclinationSink(syncToPPS)
	st, err := openStream(addr, sink)
	if err != nil {
		return nil, err
	}
	return &InclinationStream{stream: *st, sink: sink}, nil
}

// Records returns the samples found by the most recent Read. The slice is
// only valid until the next Read; the samples themselves are owned copies.
func (s *InclinationStream) Records() []InclinationSample { return s.sink.Records() }
