// Package rxp reads rxpmarker laser-scanner streams: framed packets of 3D
// point returns and housekeeping inclination samples, as captured from a
// terrestrial or airborne scanner and stored on disk (or replayed over TCP).
//
// The package has two extraction modes. Incremental streaming pulls one
// decoded buffer per Read through a PointStream or InclinationStream, with
// the sink cleared between cycles. Batch extraction (ExtractPoints,
// ExtractInclinations) decodes a whole source in one call and returns every
// record it contains. Both modes yield each record exactly once, in source
// order.
//
// A stream instance owns exactly one connection, decoder and sink and is not
// safe for concurrent use: the decode buffer is reused on every cycle.
// Records are copied out of the buffer during dispatch, so slices returned
// by Records remain usable after the stream is closed.
package rxp
