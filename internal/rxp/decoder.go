package rxp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Decoder frames one packet per Get call out of a connection. It owns no
// decoding beyond the frame boundaries: packet payloads are handed to a
// RecordSink untouched.
//
// The decoder moves from open to exhausted exactly once, when a Get lands on
// a clean end of stream. There is no way back; resource release is the
// connection's Close, not a decoder transition.
type Decoder struct {
	conn *Connection
	br   *bufio.Reader
	off  int64 // bytes consumed after the signature
	eoi  bool
}

// NewDecoder wraps conn. The decoder holds the only reference to the
// connection for its lifetime.
func NewDecoder(conn *Connection) *Decoder {
	return &Decoder{conn: conn, br: bufio.NewReader(conn)}
}

// EndOfInput reports whether the connection is exhausted. Poll it before
// every Get.
func (d *Decoder) EndOfInput() bool { return d.eoi }

// Get frames the next packet into buf, overwriting its previous contents.
// A Get that lands exactly on the end of the stream leaves buf empty and
// flips EndOfInput; a Get after that is a contract violation. Malformed
// framing surfaces as a DecodeError, a transport failure mid-stream as a
// ConnectionError.
func (d *Decoder) Get(buf *Buffer) error {
	if d.eoi {
		return &ContractViolation{Op: "Get", Msg: "decoder already at end of input"}
	}
	// Probe one byte so a clean end of stream is seen at a frame boundary
	// rather than as a truncated header.
	if _, err := d.br.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			d.eoi = true
			buf.reset()
			return nil
		}
		return &ConnectionError{Addr: d.conn.Addr(), Err: err}
	}

	var header [FRAME_HEADER_SIZE]byte
	if _, err := io.ReadFull(d.br, header[:]); err != nil {
		return d.readError(err, "truncated frame header")
	}
	hdr, err := parseFrameHeader(header[:], d.off)
	if err != nil {
		return err
	}

	data := buf.grow(FRAME_HEADER_SIZE + hdr.PayloadLen)
	copy(data, header[:])
	if _, err := io.ReadFull(d.br, data[FRAME_HEADER_SIZE:]); err != nil {
		return d.readError(err, "truncated frame payload")
	}
	d.off += int64(FRAME_HEADER_SIZE + hdr.PayloadLen)
	return nil
}

// readError classifies a failed read mid-frame: a short source is a framing
// problem (DecodeError), anything else is the transport failing underneath
// us (ConnectionError).
func (d *Decoder) readError(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &DecodeError{Offset: d.off, Msg: fmt.Sprintf("%s: %v", what, err)}
	}
	return &ConnectionError{Addr: d.conn.Addr(), Err: err}
}
