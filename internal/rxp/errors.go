package rxp

import "fmt"

// ConnectionError reports a source that could not be resolved, opened or
// read, or whose contents are not an rxpmarker stream.
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("rxp: connection %s: %v", e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// DecodeError reports malformed framing. The format layer is treated as
// opaque: there is no finer classification than the offset and a message.
type DecodeError struct {
	Offset int64 // bytes into the stream, counted after the signature
	Msg    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("rxp: decode error at byte %d: %s", e.Offset, e.Msg)
}

// ContractViolation reports caller misuse of the stream state machine, such
// as reading past end of input. It signals a bug in the caller, not a
// recoverable condition.
type ContractViolation struct {
	Op  string
	Msg string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("rxp: %s: %s", e.Op, e.Msg)
}
