// Package feed keeps a displayed message list eventually consistent with the
// backend. The backend has no push channel, so a conversation view owns a
// single polling task that re-fetches the full list on a fixed interval; a
// locally appended optimistic entry covers the gap between a send and the
// next poll.
package feed

// Message is one chat or channel post as displayed. Confirmed messages carry
// a server-assigned ID; an optimistic entry carries a client-assigned one
// until the next poll replaces the whole list.
type Message struct {
	ID         string `json:"id"`
	SenderUID  string `json:"sender_uid"`
	SenderName string `json:"sender_name,omitempty"`
	Content    string `json:"content"`
	Timestamp  string `json:"timestamp"`
}

type Phase int

const (
	// PhaseIdle: no stream selected, no network activity.
	PhaseIdle Phase = iota
	// PhaseLoading: stream selected, first fetch in flight.
	PhaseLoading
	// PhaseSynced: list reflects a successful fetch, ticker running.
	PhaseSynced
	// PhaseError: the first fetch for this stream failed; the list stays
	// empty until a later tick or a re-selection succeeds.
	PhaseError
)

// State is the displayed-list state for the currently selected stream.
// Transitions go through Reduce only.
type State struct {
	StreamID string
	Phase    Phase
	Messages []Message

	lastApplied uint64
}

type Action interface{ isAction() }

// StreamSelected replaces the current stream. The previous list is discarded
// immediately; there is no cross-stream cache.
type StreamSelected struct {
	StreamID string
}

// SendIssued appends an optimistic entry the instant a send request is
// dispatched, before its response resolves.
type SendIssued struct {
	Message Message
}

// PollResult is the outcome of one issued fetch. Seq is assigned at issuance
// time and increases monotonically across the poller's lifetime.
type PollResult struct {
	StreamID string
	Seq      uint64
	Messages []Message
	Err      error
}

func (StreamSelected) isAction() {}
func (SendIssued) isAction()     {}
func (PollResult) isAction()     {}

// Reduce applies one action. The returned bool reports whether a failure
// should be surfaced to the user: only the first load of a newly selected
// stream does, so transient blips on later ticks stay silent.
//
// A successful PollResult replaces the entire list; the fetched list is
// authoritative and optimistic entries are not merged or deduplicated against
// it. Results for a stream other than the current one, or issued earlier than
// an already-applied result, are discarded.
func Reduce(s State, a Action) (State, bool) {
	switch act := a.(type) {
	case StreamSelected:
		s.StreamID = act.StreamID
		s.Messages = nil
		if act.StreamID == "" {
			s.Phase = PhaseIdle
		} else {
			s.Phase = PhaseLoading
		}
		return s, false

	case SendIssued:
		if s.Phase == PhaseIdle {
			return s, false
		}
		s.Messages = append(s.Messages, act.Message)
		return s, false

	case PollResult:
		if act.StreamID != s.StreamID {
			return s, false
		}
		if act.Seq <= s.lastApplied {
			return s, false
		}
		if act.Err != nil {
			if s.Phase == PhaseLoading {
				s.Phase = PhaseError
				return s, true
			}
			// Stale-but-present beats blank: keep the last known list.
			return s, false
		}
		s.Messages = act.Messages
		s.Phase = PhaseSynced
		s.lastApplied = act.Seq
		return s, false
	}
	return s, false
}
