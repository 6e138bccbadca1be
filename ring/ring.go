package ring

// Ring is a fixed-capacity circular byte buffer. Writing into a full
// buffer overwrites the oldest byte, so the newest data is always kept.
// Callers that must not lose data are expected to check Full before Put.
//
// Ring performs no locking. It is owned by a single logger engine and
// follows the engine's concurrency model.
type Ring struct {
	buf  []byte
	head int // next write position
	tail int // oldest byte
	full bool
}

// New creates a ring buffer with the given capacity. A capacity less
// than 1 is replaced with 1.
func New(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{buf: make([]byte, capacity)}
}

// Put appends a byte. If the buffer is full, the oldest byte is
// overwritten and the tail advances.
func (r *Ring) Put(c byte) {
	r.buf[r.head] = c

	if r.full {
		r.tail = (r.tail + 1) % len(r.buf)
	}

	r.head = (r.head + 1) % len(r.buf)
	r.full = r.head == r.tail
}

// Get removes and returns the oldest byte. The second return value is
// false when the buffer is empty.
func (r *Ring) Get() (byte, bool) {
	if r.Empty() {
		return 0, false
	}

	c := r.buf[r.tail]
	r.full = false
	r.tail = (r.tail + 1) % len(r.buf)
	return c, true
}

// Reset discards all buffered bytes.
func (r *Ring) Reset() {
	r.head = r.tail
	r.full = false
}

// Empty reports whether the buffer holds no bytes.
func (r *Ring) Empty() bool {
	return !r.full && r.head == r.tail
}

// Full reports whether the buffer is at capacity.
func (r *Ring) Full() bool {
	return r.full
}

// Capacity returns the total capacity in bytes.
func (r *Ring) Capacity() int {
	return len(r.buf)
}

// Size returns the number of buffered bytes.
func (r *Ring) Size() int {
	if r.full {
		return len(r.buf)
	}
	if r.head >= r.tail {
		return r.head - r.tail
	}
	return len(r.buf) + r.head - r.tail
}

// Head returns the next write index. Exposed for bulk exporters.
func (r *Ring) Head() int {
	return r.head
}

// Tail returns the index of the oldest byte. Exposed for bulk exporters.
func (r *Ring) Tail() int {
	return r.tail
}

// Storage returns the raw backing array. Exposed for bulk exporters;
// callers must not mutate it.
func (r *Ring) Storage() []byte {
	return r.buf
}

// Segments returns the buffered bytes as at most two contiguous slices
// of the backing array, oldest first. Writing first followed by second
// to a sink emits the bytes in FIFO order without per-byte copies.
// Both slices are nil when the buffer is empty.
func (r *Ring) Segments() (first, second []byte) {
	if r.Empty() {
		return nil, nil
	}
	if r.tail < r.head && !r.full {
		return r.buf[r.tail:r.head], nil
	}
	// Wraparound, or full with head == tail.
	return r.buf[r.tail:], r.buf[:r.head]
}
