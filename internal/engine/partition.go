package engine

// chunk is a contiguous half-open index range [lo, hi) over the input.
type chunk struct {
	lo, hi int
}

// partition splits n records into min(workers, n) contiguous chunks whose
// sizes differ by at most one. The chunks cover [0, n) exactly: strictly
// increasing, no overlap, no gaps. workers == 1 yields a single chunk that
// flows through the same per-chunk logic as the parallel path.
func partition(n, workers int) []chunk {
	if n == 0 {
		return nil
	}
	k := workers
	if k > n {
		k = n
	}
	base, rem := n/k, n%k

	chunks := make([]chunk, k)
	lo := 0
	for i := range chunks {
		size := base
		if i < rem {
			size++
		}
		chunks[i] = chunk{lo: lo, hi: lo + size}
		lo += size
	}
	return chunks
}
