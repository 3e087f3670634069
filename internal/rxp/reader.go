package rxp

// Reader is a small builder for record iterators over one source. It keeps
// the address and options; each call to Points or Inclinations opens a fresh
// stream.
type Reader struct {
	addr      string
	syncToPPS bool
}

// NewReader creates a reader for addr with syncToPPS off.
func NewReader(addr string) *Reader {
	return &Reader{addr: addr}
}

// SyncToPPS sets whether points without a PPS timing reference are dropped.
// Returns the reader for chaining.
func (r *Reader) SyncToPPS(sync bool) *Reader {
	r.syncToPPS = sync
	return r
}

// Points opens the source and returns an iterator over its point returns.
// The caller must Close the iterator.
func (r *Reader) Points() (*Points, error) {
	st, err := OpenPointStream(r.addr, r.syncToPPS)
	if err != nil {
		return nil, err
	}
	return &Points{stream: st}, nil
}

// Inclinations opens the source and returns an iterator over its
// housekeeping inclination samples. The caller must Close the iterator.
func (r *Reader) Inclinations() (*Inclinations, error) {
	st, err := OpenInclinationStream(r.addr, r.syncToPPS)
	if err != nil {
		return nil, err
	}
	return &Inclinations{stream: st}, nil
}

// Points hands out one point per Next call, reading a buffer ahead as
// needed.
type Points struct {
	stream *PointStream
	queue  []Point
	head   int
	err    error
}

// Next returns the next point. ok is false once the stream is exhausted or
// an error occurred; check Err afterwards to tell the two apart.
func (it *Points) Next() (p Point, ok bool) {
	for it.head >= len(it.queue) {
		if it.err != nil || it.stream.EndOfInput() {
			return Point{}, false
		}
		if err := it.stream.Read(); err != nil {
			it.err = err
			return Point{}, false
		}
		// Copy out of the sink: the sink's slice is reused next cycle.
		it.queue = append(it.queue[:0], it.stream.Records()...)
		it.head = 0
	}
	p = it.queue[it.head]
	it.head++
	return p, true
}

// Err returns the first error the iterator hit, if any.
func (it *Points) Err() error { return it.err }

// Close releases the underlying stream. Safe to call more than once.
func (it *Points) Close() error { return it.stream.Close() }

// Inclinations hands out one inclination sample per Next call.
type Inclinations struct {
	stream *InclinationStream
	queue  []InclinationSample
	head   int
	err    error
}

// Next returns the next sample. ok is false once the stream is exhausted or
// an error occurred; check Err afterwards to tell the two apart.
func (it *Inclinations) Next() (s InclinationSample, ok bool) {
	for it.head >= len(it.queue) {
		if it.err != nil || it.stream.EndOfInput() {
			return InclinationSample{}, false
		}
		if err := it.stream.Read(); err != nil {
			it.err = err
			return InclinationSample{}, false
		}
		it.queue = append(it.queue[:0], it.stream.Records()...)
		it.head = 0
	}
	s = it.queue[it.head]
	it.head++
	return s, true
}

// Err returns the first error the iterator hit, if any.
func (it *Inclinations) Err() error { return it.err }

// Close releases the underlying stream. Safe to call more than once.
func (it *Inclinations) Close() error { return it.stream.Close() }
