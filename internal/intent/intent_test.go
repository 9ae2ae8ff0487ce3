package intent

import (
	"encoding/json"
	"testing"
)

type memStorage struct {
	data map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{data: map[string]string{}}
}

func (m *memStorage) Set(k string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[k] = string(b)
	return nil
}

func (m *memStorage) Get(k string, v any) error {
	raw, ok := m.data[k]
	if !ok {
		return nil
	}
	return json.Unmarshal([]byte(raw), v)
}

func (m *memStorage) Del(k string) {
	delete(m.data, k)
}

func TestStartChatConsumedOnce(t *testing.T) {
	st := newMemStorage()
	if err := LeaveStartChat(st, StartChat{RecipientUID: "m1", Message: "Hi!"}); err != nil {
		t.Fatalf("LeaveStartChat failed: %v", err)
	}

	got, ok := TakeStartChat(st)
	if !ok {
		t.Fatal("expected pending StartChat intent")
	}
	if got.RecipientUID != "m1" || got.Message != "Hi!" {
		t.Fatalf("unexpected intent: %+v", got)
	}

	if _, ok := TakeStartChat(st); ok {
		t.Fatal("intent must be deleted on first consumption")
	}
}

func TestCreatePitchConsumedOnce(t *testing.T) {
	st := newMemStorage()
	LeaveCreatePitch(st, CreatePitch{BusinessID: "b1", BusinessName: "Clay Works"})

	got, ok := TakeCreatePitch(st)
	if !ok {
		t.Fatal("expected pending CreatePitch intent")
	}
	if got.BusinessID != "b1" || got.BusinessName != "Clay Works" {
		t.Fatalf("unexpected intent: %+v", got)
	}
	if _, ok := TakeCreatePitch(st); ok {
		t.Fatal("intent must be deleted on first consumption")
	}
}

func TestTakeAbsentIsDefault(t *testing.T) {
	st := newMemStorage()
	if _, ok := TakeStartChat(st); ok {
		t.Fatal("absent intent must report false")
	}
	if _, ok := TakeCreatePitch(st); ok {
		t.Fatal("absent intent must report false")
	}
}

func TestWrongKindLeftForItsConsumer(t *testing.T) {
	st := newMemStorage()
	LeaveStartChat(st, StartChat{RecipientUID: "m1", Message: "Hi!"})

	if _, ok := TakeCreatePitch(st); ok {
		t.Fatal("TakeCreatePitch must not consume a StartChat intent")
	}
	if _, ok := TakeStartChat(st); !ok {
		t.Fatal("StartChat intent must still be pending for its own consumer")
	}
}

func TestMalformedTreatedAsAbsent(t *testing.T) {
	st := newMemStorage()
	st.data["kalasetu_pending_action"] = "{broken"
	if _, ok := TakeStartChat(st); ok {
		t.Fatal("malformed intent must be treated as absent")
	}
}

func TestNewIntentOverwritesPending(t *testing.T) {
	st := newMemStorage()
	LeaveStartChat(st, StartChat{RecipientUID: "m1", Message: "first"})
	LeaveCreatePitch(st, CreatePitch{BusinessID: "b1"})

	if _, ok := TakeStartChat(st); ok {
		t.Fatal("overwritten intent must be gone")
	}
	if _, ok := TakeCreatePitch(st); !ok {
		t.Fatal("latest intent must be pending")
	}
}
