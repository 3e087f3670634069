package rxp

// Buffer is the reusable byte region one decode cycle fills. The decoder
// overwrites it on every Get, so its contents are only valid until the next
// cycle; sinks copy fields into owned records during dispatch and never
// retain slices into it.
type Buffer struct {
	data []byte
}

// Bytes returns the filled region. Valid only until the next Get.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of bytes the last Get produced.
func (b *Buffer) Len() int { return len(b.data) }

// grow resizes the buffer to n bytes, reusing the backing array when it is
// large enough, and returns the writable region.
func (b *Buffer) grow(n int) []byte {
	if cap(b.data) < n {
		b.data = make([]byte, n)
	}
	b.data = b.data[:n]
	return b.data
}

func (b *Buffer) reset() { b.data = b.data[:0] }
