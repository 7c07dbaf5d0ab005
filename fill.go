package histz

import "sync"

// minPartition is the smallest slice of a batch handed to one worker.
// Smaller batches are filled on the calling goroutine.
const minPartition = 1 << 14

// span is a half-open index range [lo, hi) of a batch.
type span struct {
	lo, hi int
}

// partition splits n rows into at most workers contiguous spans of at least
// minPartition rows each.
func partition(n, workers int) []span {
	if n == 0 {
		return nil
	}
	workers = min(workers, (n+minPartition-1)/minPartition)
	if workers <= 1 {
		return []span{{0, n}}
	}
	parts := make([]span, workers)
	size, extra := n/workers, n%workers
	lo := 0
	for p := range parts {
		hi := lo + size
		if p < extra {
			hi++
		}
		parts[p] = span{lo, hi}
		lo = hi
	}
	return parts
}

// fanOut runs fn once per span on its own goroutine and waits for all of
// them. fn must write only to state owned by its partition index.
func fanOut(parts []span, fn func(p int, s span)) {
	var wg sync.WaitGroup
	for p, s := range parts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(p, s)
		}()
	}
	wg.Wait()
}
