// Package intent is the client's only cross-view signaling mechanism: a view
// leaves a small record in shared storage instructing another view to act on
// its next mount. Records are consumed at most once — reading one deletes it.
package intent

const envelopeKey = "kalasetu_pending_action"

// Storage matches go-app's BrowserStorage surface.
type Storage interface {
	Set(k string, v any) error
	Get(k string, v any) error
	Del(k string)
}

// StartChat asks the chat view to open (or create) a conversation with a
// user and send an initial message.
type StartChat struct {
	RecipientUID string `json:"recipient_uid"`
	Message      string `json:"message"`
}

// CreatePitch asks the marketplace view to open the pitch form pre-filled
// for a business.
type CreatePitch struct {
	BusinessID   string `json:"business_id"`
	BusinessName string `json:"business_name"`
}

const (
	kindStartChat   = "start_chat"
	kindCreatePitch = "create_pitch"
)

// One envelope per client; a newly left intent overwrites any pending one.
type envelope struct {
	Kind        string       `json:"kind"`
	StartChat   *StartChat   `json:"start_chat,omitempty"`
	CreatePitch *CreatePitch `json:"create_pitch,omitempty"`
}

func LeaveStartChat(st Storage, in StartChat) error {
	return st.Set(envelopeKey, envelope{Kind: kindStartChat, StartChat: &in})
}

func LeaveCreatePitch(st Storage, in CreatePitch) error {
	return st.Set(envelopeKey, envelope{Kind: kindCreatePitch, CreatePitch: &in})
}

// TakeStartChat consumes a pending StartChat intent. A malformed or absent
// record, or one of another kind, reports false; the consuming view then
// proceeds with its default state. An intent of the wrong kind is left in
// place for its own consumer.
func TakeStartChat(st Storage) (StartChat, bool) {
	var env envelope
	if err := st.Get(envelopeKey, &env); err != nil {
		st.Del(envelopeKey)
		return StartChat{}, false
	}
	if env.Kind != kindStartChat || env.StartChat == nil {
		return StartChat{}, false
	}
	st.Del(envelopeKey)
	return *env.StartChat, true
}

// TakeCreatePitch consumes a pending CreatePitch intent.
func TakeCreatePitch(st Storage) (CreatePitch, bool) {
	var env envelope
	if err := st.Get(envelopeKey, &env); err != nil {
		st.Del(envelopeKey)
		return CreatePitch{}, false
	}
	if env.Kind != kindCreatePitch || env.CreatePitch == nil {
		return CreatePitch{}, false
	}
	st.Del(envelopeKey)
	return *env.CreatePitch, true
}
