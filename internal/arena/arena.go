// Package arena implements a chunked bump allocator for transient,
// chunk-scoped scratch data.
//
// An Arena is owned by exactly one worker at a time and is never shared or
// locked. "Allocation" is a pointer bump into a backing chunk; there are no
// individual frees. Reset retires every buffer handed out since the previous
// Reset while retaining backing capacity, so a worker that processes many
// chunks stops allocating once its arena has warmed up.
//
// Buffers returned by Reserve stay valid until the next Reset: when the
// active chunk runs out, the arena opens a new, geometrically larger chunk
// instead of reallocating the old one.
package arena

const (
	// minChunkSize is the size of the first backing chunk.
	minChunkSize = 64 * 1024

	// maxChunkGrowth caps geometric growth so a single huge record does not
	// pin an ever-doubling chunk forever.
	maxChunkGrowth = 8 * 1024 * 1024
)

// Arena is a bump allocator over a list of backing chunks.
//
// The zero value is ready to use. An Arena must not be used from more than
// one goroutine at a time.
type Arena struct {
	// full holds retired chunks; their contents stay reachable until Reset.
	full [][]byte

	// cur is the active chunk, filled up to off.
	cur []byte
	off int

	// next is the size of the next chunk to open.
	next int
}

// New returns an empty Arena. Backing storage is allocated lazily on the
// first Reserve.
func New() *Arena {
	return &Arena{}
}

// Reserve returns a writable buffer of exactly n bytes. The buffer contents
// are unspecified. It is valid until the next Reset.
//
// Reserve never fails: when the active chunk cannot satisfy the request, the
// arena opens a larger one.
func (a *Arena) Reserve(n int) []byte {
	if n < 0 {
		panic("arena: negative reservation")
	}
	if a.off+n > len(a.cur) {
		a.grow(n)
	}
	buf := a.cur[a.off : a.off+n : a.off+n]
	a.off += n
	return buf
}

// grow opens a new chunk large enough for n bytes.
func (a *Arena) grow(n int) {
	size := a.next
	if size == 0 {
		size = minChunkSize
	}
	for size < n {
		size *= 2
	}
	if a.cur != nil {
		a.full = append(a.full, a.cur)
	}
	a.cur = make([]byte, size)
	a.off = 0
	if next := size * 2; next <= maxChunkGrowth {
		a.next = next
	} else {
		a.next = maxChunkGrowth
	}
}

// Reset invalidates every buffer returned since the previous Reset and makes
// the full capacity available again. The largest chunk is retained so the
// next chunk of work reuses warm storage; smaller retired chunks are
// released.
func (a *Arena) Reset() {
	for _, c := range a.full {
		if len(c) > len(a.cur) {
			a.cur = c
		}
	}
	a.full = a.full[:0]
	a.off = 0
}

// Cap reports the total backing capacity currently held, in bytes.
func (a *Arena) Cap() int {
	n := len(a.cur)
	for _, c := range a.full {
		n += len(c)
	}
	return n
}

// Len reports the number of bytes reserved since the last Reset.
func (a *Arena) Len() int {
	n := a.off
	for _, c := range a.full {
		n += len(c)
	}
	return n
}
