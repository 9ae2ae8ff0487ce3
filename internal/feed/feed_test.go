package feed

import (
	"errors"
	"testing"
)

func msgs(contents ...string) []Message {
	out := make([]Message, 0, len(contents))
	for i, c := range contents {
		out = append(out, Message{ID: string(rune('1' + i)), Content: c})
	}
	return out
}

func TestSelectClearsPreviousList(t *testing.T) {
	s := State{}
	s, _ = Reduce(s, StreamSelected{StreamID: "a"})
	s, _ = Reduce(s, PollResult{StreamID: "a", Seq: 1, Messages: msgs("hello")})
	s, _ = Reduce(s, StreamSelected{StreamID: "b"})

	if s.StreamID != "b" || s.Phase != PhaseLoading {
		t.Fatalf("expected loading stream b, got %q phase %v", s.StreamID, s.Phase)
	}
	if len(s.Messages) != 0 {
		t.Fatal("previous stream's list must be discarded on selection")
	}
}

func TestOptimisticAppendIsImmediate(t *testing.T) {
	s := State{}
	s, _ = Reduce(s, StreamSelected{StreamID: "p1"})
	s, _ = Reduce(s, PollResult{StreamID: "p1", Seq: 1, Messages: msgs("hello")})
	s, _ = Reduce(s, SendIssued{Message: Message{ID: "local-1", Content: "hi back"}})

	if len(s.Messages) != 2 {
		t.Fatalf("expected optimistic entry appended, got %d messages", len(s.Messages))
	}
	if s.Messages[1].Content != "hi back" {
		t.Fatalf("optimistic entry must be last, got %q", s.Messages[1].Content)
	}
}

func TestPollFullyReplacesOptimisticEntry(t *testing.T) {
	s := State{}
	s, _ = Reduce(s, StreamSelected{StreamID: "p1"})
	s, _ = Reduce(s, PollResult{StreamID: "p1", Seq: 1, Messages: msgs("hello")})
	s, _ = Reduce(s, SendIssued{Message: Message{ID: "local-1", Content: "hi back"}})
	s, _ = Reduce(s, PollResult{StreamID: "p1", Seq: 2, Messages: msgs("hello", "hi back")})

	if len(s.Messages) != 2 {
		t.Fatalf("expected full replace, got %d messages", len(s.Messages))
	}
	for _, m := range s.Messages {
		if m.ID == "local-1" {
			t.Fatal("optimistic entry must not survive a successful poll")
		}
	}
}

func TestPollGrowsListAcrossTicks(t *testing.T) {
	s := State{}
	s, _ = Reduce(s, StreamSelected{StreamID: "p1"})
	s, _ = Reduce(s, PollResult{StreamID: "p1", Seq: 1, Messages: msgs("hello")})
	if len(s.Messages) != 1 {
		t.Fatalf("expected 1 message after first tick, got %d", len(s.Messages))
	}
	s, _ = Reduce(s, PollResult{StreamID: "p1", Seq: 2, Messages: msgs("hello", "hi back")})
	if len(s.Messages) != 2 {
		t.Fatalf("expected 2 messages after second tick, got %d", len(s.Messages))
	}
	if s.Phase != PhaseSynced {
		t.Fatalf("expected synced phase, got %v", s.Phase)
	}
}

func TestLateResultFromEarlierTickDiscarded(t *testing.T) {
	s := State{}
	s, _ = Reduce(s, StreamSelected{StreamID: "p1"})
	s, _ = Reduce(s, PollResult{StreamID: "p1", Seq: 2, Messages: msgs("hello", "hi back")})
	s, _ = Reduce(s, PollResult{StreamID: "p1", Seq: 1, Messages: msgs("hello")})

	if len(s.Messages) != 2 {
		t.Fatal("a later-issued result must win over a late-arriving earlier one")
	}
}

func TestCrossStreamResultDiscarded(t *testing.T) {
	s := State{}
	s, _ = Reduce(s, StreamSelected{StreamID: "a"})
	s, _ = Reduce(s, StreamSelected{StreamID: "b"})
	s, _ = Reduce(s, PollResult{StreamID: "a", Seq: 1, Messages: msgs("from a")})

	if len(s.Messages) != 0 {
		t.Fatal("a result for a previously selected stream must never be applied")
	}

	s, _ = Reduce(s, PollResult{StreamID: "b", Seq: 2, Messages: msgs("from b")})
	if len(s.Messages) != 1 || s.Messages[0].Content != "from b" {
		t.Fatalf("expected b's list, got %+v", s.Messages)
	}
}

func TestOnlyFirstLoadFailureSurfaced(t *testing.T) {
	s := State{}
	s, _ = Reduce(s, StreamSelected{StreamID: "p1"})

	s, toast := Reduce(s, PollResult{StreamID: "p1", Seq: 1, Err: errors.New("network down")})
	if !toast {
		t.Fatal("first load failure must be surfaced")
	}
	if s.Phase != PhaseError {
		t.Fatalf("expected error phase, got %v", s.Phase)
	}

	s, _ = Reduce(s, PollResult{StreamID: "p1", Seq: 2, Messages: msgs("hello")})
	s, toast = Reduce(s, PollResult{StreamID: "p1", Seq: 3, Err: errors.New("blip")})
	if toast {
		t.Fatal("failures after a successful sync must stay silent")
	}
	if len(s.Messages) != 1 {
		t.Fatal("a failed tick must keep the last known list")
	}
}

func TestSendIgnoredWithoutStream(t *testing.T) {
	s := State{}
	s, _ = Reduce(s, SendIssued{Message: Message{Content: "nope"}})
	if len(s.Messages) != 0 {
		t.Fatal("sends without a selected stream must not mutate the list")
	}
}
