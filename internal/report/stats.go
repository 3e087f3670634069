// Package report summarizes and visualizes extracted stream records.
package report

import (
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/rxp.report/internal/rxp"
)

// AttitudeStats summarizes the roll/pitch series of one stream.
type AttitudeStats struct {
	Samples    int
	Duration   float64 // seconds between first and last sample
	SampleRate float64 // samples per second, 0 for fewer than two samples

	RollMean   float64
	RollStdDev float64
	RollMin    float64
	RollMax    float64

	PitchMean   float64
	PitchStdDev float64
	PitchMin    float64
	PitchMax    float64
}

// Attitude computes summary statistics over samples. Returns the zero value
// for an empty series.
func Attitude(samples []rxp.InclinationSample) AttitudeStats {
	if len(samples) == 0 {
		return AttitudeStats{}
	}

	rolls := make([]float64, len(samples))
	pitches := make([]float64, len(samples))
	for i, s := range samples {
		rolls[i] = float64(s.Roll)
		pitches[i] = float64(s.Pitch)
	}

	stats := AttitudeStats{
		Samples:   len(samples),
		Duration:  samples[len(samples)-1].Time - samples[0].Time,
		RollMean:  stat.Mean(rolls, nil),
		PitchMean: stat.Mean(pitches, nil),
		RollMin:   rolls[0],
		RollMax:   rolls[0],
		PitchMin:  pitches[0],
		PitchMax:  pitches[0],
	}
	if len(samples) > 1 {
		stats.RollStdDev = stat.StdDev(rolls, nil)
		stats.PitchStdDev = stat.StdDev(pitches, nil)
		if stats.Duration > 0 {
			stats.SampleRate = float64(len(samples)-1) / stats.Duration
		}
	}
	for i := 1; i < len(samples); i++ {
		stats.RollMin = min(stats.RollMin, rolls[i])
		stats.RollMax = max(stats.RollMax, rolls[i])
		stats.PitchMin = min(stats.PitchMin, pitches[i])
		stats.PitchMax = max(stats.PitchMax, pitches[i])
	}
	return stats
}
