package rxp

// Batch extraction decodes a whole source in one call. Unlike Stream.Read it
// never clears the sink between cycles, so the sink ends up holding every
// record the source contains.

// ExtractInclinations returns every housekeeping inclination sample in the
// source, in source order.
func ExtractInclinations(addr string, syncToPPS bool) ([]InclinationSample, error) {
	sink := NewInclinationSink(syncToPPS)
	if err := extract(addr, sink); err != nil {
		return nil, err
	}
	return sink.TakeRecords(), nil
}

// ExtractPoints returns every point return in the source, in source order.
// syncToPPS drops points whose time is not in the PPS timeframe.
func ExtractPoints(addr string, syncToPPS bool) ([]Point, error) {
	sink := NewPointSink(syncToPPS)
	if err := extract(addr, sink); err != nil {
		return nil, err
	}
	return sink.TakeRecords(), nil
}

func extract(addr string, sink RecordSink) (err error) {
	conn, err := OpenConnection(addr)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	dec := NewDecoder(conn)
	var buf Buffer
	for !dec.EndOfInput() {
		if err := dec.Get(&buf); err != nil {
			return err
		}
		if err := sink.Dispatch(&buf); err != nil {
			return err
		}
	}
	return nil
}
