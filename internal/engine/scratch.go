package engine

import (
	"sync"

	"github.com/Aljutor/yurki/internal/arena"
)

// Scratch holds one worker's private mutable state for the duration of a
// chunk: a bump arena for replacement staging plus reusable capture-index
// and fragment buffers. Nothing in a Scratch is shared; each worker
// goroutine obtains its own from the pool and returns it when its chunk
// completes.
//
// The pool stays warm across calls, so repeated batch calls reuse backing
// storage instead of reallocating it.
type Scratch struct {
	// arena stages replacement output bytes. Reset at chunk start,
	// capacity retained.
	arena *arena.Arena

	// groups is the per-record capture index table. Overwritten by every
	// match; stride is 2*(groups+1) ints.
	groups []int

	// bounds accumulates the flattened capture tables of all matches in
	// one record during replace's collection pass.
	bounds []int

	// frags accumulates split fragments before they are copied into the
	// caller-owned result.
	frags []string
}

var scratchPool = sync.Pool{
	New: func() any {
		return &Scratch{arena: arena.New()}
	},
}

// getScratch returns a reset Scratch for one chunk of work.
func getScratch() *Scratch {
	sc := scratchPool.Get().(*Scratch)
	sc.reset()
	return sc
}

// putScratch returns a Scratch to the pool once its chunk is done. Results
// that must outlive the chunk have been copied into caller-owned storage by
// then; everything the Scratch holds is disposable.
func putScratch(sc *Scratch) {
	scratchPool.Put(sc)
}

// reset empties the scratch while keeping backing capacity.
func (sc *Scratch) reset() {
	sc.arena.Reset()
	sc.groups = sc.groups[:0]
	sc.bounds = sc.bounds[:0]
	sc.frags = sc.frags[:0]
}
