package rxp

// InclinationSample is one housekeeping attitude reading. Immutable once
// produced.
type InclinationSample struct {
	// Time is the device time of the reading in seconds, monotonic within a
	// stream.
	Time float64

	// Roll is the rotation around the x axis in degrees.
	Roll float32

	// Pitch is the rotation around the y axis in degrees.
	Pitch float32
}
