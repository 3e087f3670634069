package rxp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInclinationSinkScaling(t *testing.T) {
	// Raw values are thousandths of a degree.
	buf := bufferWithFrames(t, func(w *Writer) {
		require.NoError(t, w.WriteInclination(1_000_000, -8442, -981))
	})

	sink := NewInclinationSink(false)
	require.NoError(t, sink.Dispatch(buf))

	samples := sink.Records()
	require.Len(t, samples, 1)
	assert.InDelta(t, -8.442, samples[0].Roll, 1e-3)
	assert.InDelta(t, -0.981, samples[0].Pitch, 1e-3)
	assert.InDelta(t, 1.0, samples[0].Time, 1e-9, "sample time must come from the packet timestamp")
}

func TestPPSMarkerProducesNoRecords(t *testing.T) {
	// PPS packets are pure markers: the timeframe lives in the per-point
	// flag bits, so a marker contributes no records and no sink state.
	buf := bufferWithFrames(t, func(w *Writer) {
		require.NoError(t, w.WritePPS(1_000_000, 1))
		require.NoError(t, w.WriteInclination(1_250_000, 8442, 981))
		require.NoError(t, w.WritePPS(2_000_000, 2))
	})

	sink := NewInclinationSink(false)
	require.NoError(t, sink.Dispatch(buf))

	samples := sink.Records()
	require.Len(t, samples, 1)
	assert.InDelta(t, 1.25, samples[0].Time, 1e-9)
}

func TestInclinationSinkTimePerPacket(t *testing.T) {
	// Each sample carries the time established for its own packet, not a
	// stale value from an earlier one.
	buf := bufferWithFrames(t, func(w *Writer) {
		require.NoError(t, w.WriteInclination(500_000, 1000, 0))
		require.NoError(t, w.WriteInclination(1_500_000, 2000, 0))
	})

	sink := NewInclinationSink(false)
	require.NoError(t, sink.Dispatch(buf))

	samples := sink.Records()
	require.Len(t, samples, 2)
	assert.InDelta(t, 0.5, samples[0].Time, 1e-9)
	assert.InDelta(t, 1.5, samples[1].Time, 1e-9)
}

func TestInclinationSinkClearAndTake(t *testing.T) {
	buf := bufferWithFrames(t, func(w *Writer) {
		require.NoError(t, w.WriteInclination(1000, 100, 200))
	})

	sink := NewInclinationSink(false)
	require.NoError(t, sink.Dispatch(buf))
	require.Len(t, sink.Records(), 1)

	sink.Clear()
	assert.Empty(t, sink.Records(), "Clear must empty the accumulation list")

	require.NoError(t, sink.Dispatch(buf))
	taken := sink.TakeRecords()
	require.Len(t, taken, 1)
	assert.Nil(t, sink.TakeRecords(), "TakeRecords is a one-shot transfer")
}

func TestInclinationSinkAccumulatesWithoutClear(t *testing.T) {
	buf := bufferWithFrames(t, func(w *Writer) {
		require.NoError(t, w.WriteInclination(1000, 100, 200))
	})

	sink := NewInclinationSink(false)
	for i := 0; i < 4; i++ {
		require.NoError(t, sink.Dispatch(buf))
	}
	assert.Len(t, sink.Records(), 4, "without Clear the sink accumulates across dispatches")
}

func TestPointSinkDecodesRecords(t *testing.T) {
	pts := []Point{testPoint(1), testPoint(2), testPoint(3)}
	buf := bufferWithFrames(t, func(w *Writer) {
		require.NoError(t, w.WritePoints(2_000_000, pts))
	})

	sink := NewPointSink(false)
	require.NoError(t, sink.Dispatch(buf))

	got := sink.Records()
	require.Len(t, got, 3)
	for i, p := range got {
		want := pts[i]
		assert.Equal(t, want.X, p.X)
		assert.Equal(t, want.Echo, p.Echo)
		assert.Equal(t, want.Facet, p.Facet)
		assert.Equal(t, want.PPSTimeframe, p.PPSTimeframe)
		assert.InDelta(t, 2.0, p.Time, 1e-9)
	}
}

func TestPointSinkSyncToPPS(t *testing.T) {
	// testPoint leaves every fourth point outside the PPS timeframe.
	pts := make([]Point, 8)
	for i := range pts {
		pts[i] = testPoint(i)
	}
	buf := bufferWithFrames(t, func(w *Writer) {
		require.NoError(t, w.WritePoints(1000, pts))
	})

	unfiltered := NewPointSink(false)
	require.NoError(t, unfiltered.Dispatch(buf))
	assert.Len(t, unfiltered.Records(), 8)

	filtered := NewPointSink(true)
	require.NoError(t, filtered.Dispatch(buf))
	require.Len(t, filtered.Records(), 6)
	for _, p := range filtered.Records() {
		assert.True(t, p.PPSTimeframe)
	}
}

func TestSinkSkipsUnknownPacketTypes(t *testing.T) {
	buf := bufferWithFrames(t, func(w *Writer) {
		require.NoError(t, w.writeFrame(0x7F, 1000, []byte{1, 2, 3, 4}))
		require.NoError(t, w.WriteInclination(2000, 500, -500))
	})

	sink := NewInclinationSink(false)
	require.NoError(t, sink.Dispatch(buf))
	assert.Len(t, sink.Records(), 1)
}

func TestSinkRejectsRaggedPointPayload(t *testing.T) {
	buf := bufferWithFrames(t, func(w *Writer) {
		require.NoError(t, w.writeFrame(PacketPointData, 1000, make([]byte, POINT_RECORD_SIZE+5)))
	})

	sink := NewPointSink(false)
	err := sink.Dispatch(buf)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}
