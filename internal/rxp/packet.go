package rxp

import "encoding/binary"

// rxpmarker wire format constants. A stream is an 8-byte signature followed
// by a sequence of frames. Every frame starts with a fixed 10-byte header:
//
//	preamble   uint16  0xA55A, little-endian
//	type       uint8   packet type (see below)
//	flags      uint8   reserved
//	length     uint16  payload length in bytes
//	timestamp  uint32  device time in microseconds
//
// followed by `length` payload bytes. All multi-byte fields are
// little-endian.
const (
	FRAME_PREAMBLE    = 0xA55A // marker at the start of every frame
	FRAME_HEADER_SIZE = 10     // preamble + type + flags + length + timestamp
	POINT_RECORD_SIZE = 24     // one point return inside a point-data payload
	HK_INCL_SIZE      = 8      // raw ROLL + PITCH int32 pair
	PPS_SIZE          = 4      // whole-second PPS marker payload

	// Physical unit conversions.
	INCL_SCALE      = 0.001 // raw inclination LSB in degrees
	TIME_RESOLUTION = 1e-6  // device timestamp LSB in seconds
)

// Packet types carried in the frame header. Types not listed here are
// skipped by the dispatcher once the framing layer has bounded them.
const (
	PacketPointData = 0x01 // N point records of POINT_RECORD_SIZE bytes each
	PacketHkIncl    = 0x02 // one housekeeping inclination reading
	PacketPps       = 0x03 // pulse-per-second sync marker
)

// Point record flag bits, mirroring the scanner's attribute word.
const (
	flagEchoMask     = 0x0003 // bits 0-1: echo type
	flagWaveform     = 0x0008 // waveform available for this return
	flagPseudoEcho   = 0x0010 // pseudo echo with fixed range
	flagSwTarget     = 0x0020 // software calculated target
	flagFreshPPS     = 0x0040 // PPS not older than 1.5s
	flagPPSTimeframe = 0x0080 // time value is in the PPS timeframe
	flagFacetShift   = 8      // bits 8-9: facet number
	flagFacetMask    = 0x0300
)

// frameHeader is the decoded fixed header of one frame.
type frameHeader struct {
	Type       uint8
	Flags      uint8
	PayloadLen int
	Timestamp  uint32 // device microseconds
}

// parseFrameHeader decodes the fixed header at the start of data. It
// validates the preamble only; payload bounds are the caller's problem.
func parseFrameHeader(data []byte, off int64) (frameHeader, error) {
	if len(data) < FRAME_HEADER_SIZE {
		return frameHeader{}, &DecodeError{Offset: off, Msg: "truncated frame header"}
	}
	if preamble := binary.LittleEndian.Uint16(data[0:2]); preamble != FRAME_PREAMBLE {
		return frameHeader{}, &DecodeError{
			Offset: off,
			Msg:    "bad frame preamble",
		}
	}
	return frameHeader{
		Type:       data[2],
		Flags:      data[3],
		PayloadLen: int(binary.LittleEndian.Uint16(data[4:6])),
		Timestamp:  binary.LittleEndian.Uint32(data[6:10]),
	}, nil
}

func putFrameHeader(data []byte, typ uint8, flags uint8, payloadLen int, timestamp uint32) {
	binary.LittleEndian.PutUint16(data[0:2], FRAME_PREAMBLE)
	data[2] = typ
	data[3] = flags
	binary.LittleEndian.PutUint16(data[4:6], uint16(payloadLen))
	binary.LittleEndian.PutUint32(data[6:10], timestamp)
}
