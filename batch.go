package iso8583

import (
	"context"
	"sync"
)

// BatchResult pairs one input payload's outcome with its index, so
// callers can correlate failures back to the original slice position.
type BatchResult struct {
	Index   int
	Message *Message
	Err     error
}

// Batch decodes many independent payloads against one shared Family
// concurrently, per spec.md §5: the schema is immutable and safely
// shared, and each payload produces its own Message, so this does not
// violate the single-threaded-per-instance rule. Grounded on the
// teacher's Processor.ProcessBatch, generalized from a fixed packager to
// any Family and LayoutView.
type Batch struct {
	family      *Family
	layout      LayoutView
	concurrency int
}

// NewBatch returns a Batch bounded to concurrency simultaneous decodes;
// concurrency <= 0 means unbounded (one goroutine per payload).
func NewBatch(family *Family, layout LayoutView, concurrency int) *Batch {
	return &Batch{family: family, layout: layout, concurrency: concurrency}
}

// Decode parses every payload independently and returns one BatchResult
// per input, in input order. A decode failure for one payload does not
// affect the others.
func (b *Batch) Decode(ctx context.Context, payloads [][]byte) []BatchResult {
	results := make([]BatchResult, len(payloads))

	sem := make(chan struct{}, b.concurrencyLimit())
	var wg sync.WaitGroup

	for i, payload := range payloads {
		i, payload := i, payload
		wg.Add(1)
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			results[i] = BatchResult{Index: i, Err: ctx.Err()}
			wg.Done()
			continue
		}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			msg, err := b.family.Parse(payload, b.layout)
			results[i] = BatchResult{Index: i, Message: msg, Err: err}
		}()
	}

	wg.Wait()
	return results
}

func (b *Batch) concurrencyLimit() int {
	if b.concurrency > 0 {
		return b.concurrency
	}
	return 1 << 20 // effectively unbounded
}
