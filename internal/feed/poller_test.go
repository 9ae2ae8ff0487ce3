package feed

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// collector gathers applied results safely across poller goroutines.
type collector struct {
	mu      sync.Mutex
	results []PollResult
}

func (c *collector) apply(r PollResult) {
	c.mu.Lock()
	c.results = append(c.results, r)
	c.mu.Unlock()
}

func (c *collector) snapshot() []PollResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]PollResult(nil), c.results...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestSelectIssuesImmediateFetch(t *testing.T) {
	var c collector
	p := NewPoller(func(ctx context.Context, streamID string) ([]Message, error) {
		return msgs("hello"), nil
	}, time.Hour, c.apply)
	defer p.Stop()

	p.Select("p1")

	waitFor(t, func() bool { return len(c.snapshot()) == 1 })
	got := c.snapshot()[0]
	if got.StreamID != "p1" || got.Err != nil || len(got.Messages) != 1 {
		t.Fatalf("unexpected first result: %+v", got)
	}
}

func TestTicksRepeatAtInterval(t *testing.T) {
	var c collector
	p := NewPoller(func(ctx context.Context, streamID string) ([]Message, error) {
		return nil, nil
	}, 10*time.Millisecond, c.apply)
	defer p.Stop()

	p.Select("p1")

	waitFor(t, func() bool { return len(c.snapshot()) >= 3 })
	results := c.snapshot()
	for i := 1; i < len(results); i++ {
		if results[i].Seq <= results[i-1].Seq {
			t.Fatalf("sequence must increase with issuance order: %d then %d",
				results[i-1].Seq, results[i].Seq)
		}
	}
}

func TestStopDiscardsInFlightResponse(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var c collector
	p := NewPoller(func(ctx context.Context, streamID string) ([]Message, error) {
		close(started)
		<-release
		return msgs("late"), nil
	}, time.Hour, c.apply)

	p.Select("p1")
	<-started
	p.Stop()
	close(release)

	time.Sleep(20 * time.Millisecond)
	if len(c.snapshot()) != 0 {
		t.Fatal("a response resolving after Stop must be discarded")
	}
}

func TestSwitchingStreamDropsPreviousFetch(t *testing.T) {
	blockA := make(chan struct{})
	startedA := make(chan struct{})
	var startedOnce sync.Once
	var c collector
	p := NewPoller(func(ctx context.Context, streamID string) ([]Message, error) {
		if streamID == "a" {
			startedOnce.Do(func() { close(startedA) })
			<-blockA
			return msgs("from a"), nil
		}
		return msgs("from b"), nil
	}, time.Hour, c.apply)
	defer p.Stop()

	p.Select("a")
	<-startedA
	p.Select("b")

	waitFor(t, func() bool { return len(c.snapshot()) >= 1 })
	close(blockA)
	time.Sleep(20 * time.Millisecond)

	for _, r := range c.snapshot() {
		if r.StreamID == "a" {
			t.Fatal("in-flight fetch for the previous stream must be discarded")
		}
	}
}

func TestFetchErrorsPropagateToApply(t *testing.T) {
	var c collector
	wantErr := errors.New("boom")
	p := NewPoller(func(ctx context.Context, streamID string) ([]Message, error) {
		return nil, wantErr
	}, time.Hour, c.apply)
	defer p.Stop()

	p.Select("p1")
	waitFor(t, func() bool { return len(c.snapshot()) == 1 })
	if got := c.snapshot()[0].Err; !errors.Is(got, wantErr) {
		t.Fatalf("expected fetch error in result, got %v", got)
	}
}

func TestSelectEmptyStopsPolling(t *testing.T) {
	var c collector
	p := NewPoller(func(ctx context.Context, streamID string) ([]Message, error) {
		return nil, nil
	}, 5*time.Millisecond, c.apply)

	p.Select("p1")
	waitFor(t, func() bool { return len(c.snapshot()) >= 1 })
	p.Select("")

	n := len(c.snapshot())
	time.Sleep(30 * time.Millisecond)
	if len(c.snapshot()) > n+1 {
		t.Fatal("selecting no stream must stop the ticker")
	}
}
