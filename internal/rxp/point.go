package rxp

import (
	"encoding/binary"
	"math"
)

// EchoType classifies a laser return when a pulse produces multiple echos.
type EchoType uint8

const (
	EchoSingle   EchoType = iota // the only echo from this pulse
	EchoFirst                    // the first of multiple echos
	EchoInterior                 // the second through n-1 echo
	EchoLast                     // the last of multiple echos
)

func (e EchoType) String() string {
	switch e {
	case EchoSingle:
		return "single"
	case EchoFirst:
		return "first"
	case EchoInterior:
		return "interior"
	case EchoLast:
		return "last"
	}
	return "unknown"
}

// Point is one laser return, copied out of the decode buffer during
// dispatch. Immutable once produced.
type Point struct {
	X, Y, Z float32

	// Amplitude is the relative amplitude in dB.
	Amplitude float32

	// Reflectance is the relative reflectance in dB.
	Reflectance float32

	// Deviation is a measure of pulse shape distortion.
	Deviation uint16

	Echo EchoType

	// WaveformAvailable reports whether a waveform was recorded for this
	// return.
	WaveformAvailable bool

	// PseudoEcho marks a pseudo echo with fixed range.
	PseudoEcho bool

	// SwTarget marks a software calculated target.
	SwTarget bool

	// FreshPPS reports that the PPS reference was not older than 1.5s.
	FreshPPS bool

	// PPSTimeframe reports that Time is expressed in the PPS timeframe.
	PPSTimeframe bool

	// Facet is the mirror facet number the return came from.
	Facet uint8

	// Time is the acquisition time in seconds.
	Time float64
}

// decodePoint copies one POINT_RECORD_SIZE record out of rec. t is the
// device time established for the enclosing packet.
func decodePoint(rec []byte, t float64) Point {
	flags := binary.LittleEndian.Uint16(rec[22:24])
	return Point{
		X:                 math.Float32frombits(binary.LittleEndian.Uint32(rec[0:4])),
		Y:                 math.Float32frombits(binary.LittleEndian.Uint32(rec[4:8])),
		Z:                 math.Float32frombits(binary.LittleEndian.Uint32(rec[8:12])),
		Amplitude:         math.Float32frombits(binary.LittleEndian.Uint32(rec[12:16])),
		Reflectance:       math.Float32frombits(binary.LittleEndian.Uint32(rec[16:20])),
		Deviation:         binary.LittleEndian.Uint16(rec[20:22]),
		Echo:              EchoType(flags & flagEchoMask),
		WaveformAvailable: flags&flagWaveform != 0,
		PseudoEcho:        flags&flagPseudoEcho != 0,
		SwTarget:          flags&flagSwTarget != 0,
		FreshPPS:          flags&flagFreshPPS != 0,
		PPSTimeframe:      flags&flagPPSTimeframe != 0,
		Facet:             uint8((flags & flagFacetMask) >> flagFacetShift),
		Time:              t,
	}
}

// encodePoint writes p as one record into rec, the inverse of decodePoint.
// The packet timestamp carries the time, so it is not part of the record.
func encodePoint(rec []byte, p Point) {
	binary.LittleEndian.PutUint32(rec[0:4], math.Float32bits(p.X))
	binary.LittleEndian.PutUint32(rec[4:8], math.Float32bits(p.Y))
	binary.LittleEndian.PutUint32(rec[8:12], math.Float32bits(p.Z))
	binary.LittleEndian.PutUint32(rec[12:16], math.Float32bits(p.Amplitude))
	binary.LittleEndian.PutUint32(rec[16:20], math.Float32bits(p.Reflectance))
	binary.LittleEndian.PutUint16(rec[20:22], p.Deviation)

	flags := uint16(p.Echo) & flagEchoMask
	if p.WaveformAvailable {
		flags |= flagWaveform
	}
	if p.PseudoEcho {
		flags |= flagPseudoEcho
	}
	if p.SwTarget {
		flags |= flagSwTarget
	}
	if p.FreshPPS {
		flags |= flagFreshPPS
	}
	if p.PPSTimeframe {
		flags |= flagPPSTimeframe
	}
	flags |= (uint16(p.Facet) << flagFacetShift) & flagFacetMask
	binary.LittleEndian.PutUint16(rec[22:24], flags)
}
