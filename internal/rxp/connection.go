package rxp

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"strings"
)

// streamSignature opens every rxpmarker stream. A source that does not start
// with it is not in the recognized format family.
var streamSignature = [8]byte{'R', 'X', 'P', 'S', 'T', 'R', 'M', '1'}

var errConnClosed = errors.New("connection closed")

// Connection owns the byte source behind a stream: a local file or a TCP
// endpoint. Exactly one decoder reads from a connection; there is no
// concurrent use.
type Connection struct {
	addr   string
	rc     io.ReadCloser
	closed bool
}

// OpenConnection resolves addr (a plain file path, a file:// URI, or
// tcp://host:port), opens it and validates the stream signature. On any
// failure the underlying handle is released before returning.
func OpenConnection(addr string) (*Connection, error) {
	rc, err := openSource(addr)
	if err != nil {
		return nil, &ConnectionError{Addr: addr, Err: err}
	}
	var sig [8]byte
	if _, err := io.ReadFull(rc, sig[:]); err != nil {
		rc.Close()
		return nil, &ConnectionError{Addr: addr, Err: fmt.Errorf("reading stream signature: %w", err)}
	}
	if sig != streamSignature {
		rc.Close()
		return nil, &ConnectionError{Addr: addr, Err: fmt.Errorf("unrecognized stream signature %q", sig[:])}
	}
	return &Connection{addr: addr, rc: rc}, nil
}

func openSource(addr string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(addr, "file://"):
		u, err := url.Parse(addr)
		if err != nil {
			return nil, err
		}
		return os.Open(u.Path)
	case strings.HasPrefix(addr, "tcp://"):
		return net.Dial("tcp", strings.TrimPrefix(addr, "tcp://"))
	default:
		return os.Open(addr)
	}
}

// Addr returns the address the connection was opened with.
func (c *Connection) Addr() string { return c.addr }

// Read fills p with the next bytes of the stream, after the signature.
// Returns io.EOF once the source is exhausted.
func (c *Connection) Read(p []byte) (int, error) {
	if c.closed {
		return 0, &ConnectionError{Addr: c.addr, Err: errConnClosed}
	}
	return c.rc.Read(p)
}

// Close releases the underlying handle. Safe to call more than once; only
// the first call closes the source.
func (c *Connection) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if err := c.rc.Close(); err != nil {
		return &ConnectionError{Addr: c.addr, Err: err}
	}
	return nil
}
