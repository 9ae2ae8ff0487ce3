package feed

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// FetchFunc loads the full ordered message list for a stream.
type FetchFunc func(ctx context.Context, streamID string) ([]Message, error)

// Poller is the cancellable polling task a conversation view owns. Select
// tears down the previous stream's loop before starting a new one, so at most
// one ticker runs at a time. Ticks are issued on a fixed interval regardless
// of whether the previous fetch resolved; overlapping responses are ordered
// by their issuance sequence and reconciled by Reduce.
type Poller struct {
	fetch    FetchFunc
	interval time.Duration
	apply    func(PollResult)

	seq atomic.Uint64

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewPoller builds a poller. apply is invoked from background goroutines;
// views wrap it in ctx.Dispatch to stay on the UI update path.
func NewPoller(fetch FetchFunc, interval time.Duration, apply func(PollResult)) *Poller {
	return &Poller{fetch: fetch, interval: interval, apply: apply}
}

// Select switches the poller to a stream: the previous loop is cancelled,
// an immediate fetch is issued, then one tick per interval. An empty id just
// stops the poller.
func (p *Poller) Select(streamID string) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	if streamID == "" {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.mu.Unlock()

	go p.loop(ctx, streamID)
}

// Stop ends all polling. Responses still in flight are discarded, never
// applied.
func (p *Poller) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()
}

func (p *Poller) loop(ctx context.Context, streamID string) {
	p.poll(ctx, streamID)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Issue in its own goroutine so a slow response never delays
			// the next tick.
			go p.poll(ctx, streamID)
		}
	}
}

func (p *Poller) poll(ctx context.Context, streamID string) {
	seq := p.seq.Add(1)
	msgs, err := p.fetch(ctx, streamID)
	if ctx.Err() != nil {
		return
	}
	p.apply(PollResult{StreamID: streamID, Seq: seq, Messages: msgs, Err: err})
}
