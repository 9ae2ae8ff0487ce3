package session

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

func TestGetAbsent(t *testing.T) {
	store := NewStore(newMemStorage())
	if _, ok := store.Get(); ok {
		t.Fatal("expected no record in empty storage")
	}
}

func TestGetMalformed(t *testing.T) {
	mem := newMemStorage()
	mem.data[recordKey] = "{not json"
	store := NewStore(mem)
	if _, ok := store.Get(); ok {
		t.Fatal("malformed record must be treated as absent")
	}
}

func TestGetIncomplete(t *testing.T) {
	mem := newMemStorage()
	mem.data[recordKey] = `{"name":"A"}`
	store := NewStore(mem)
	if _, ok := store.Get(); ok {
		t.Fatal("record without uid/role must be treated as absent")
	}
}

func TestSetGetClear(t *testing.T) {
	store := NewStore(newMemStorage())
	want := Record{UID: "u1", Name: "Asha", Email: "asha@example.com", Role: RoleArtisan}
	if err := store.Set(want); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := store.Get()
	if !ok {
		t.Fatal("expected record after Set")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	store.Clear()
	if _, ok := store.Get(); ok {
		t.Fatal("expected no record after Clear")
	}
}

func TestSetReplacesWholesale(t *testing.T) {
	store := NewStore(newMemStorage())
	store.Set(Record{UID: "u1", Name: "Asha", Email: "a@example.com", Role: RoleArtisan})
	store.Set(Record{UID: "u2", Role: RoleMentor})

	got, ok := store.Get()
	if !ok {
		t.Fatal("expected record")
	}
	if got.UID != "u2" || got.Role != RoleMentor || got.Name != "" {
		t.Fatalf("sign-in must replace the record wholesale, got %+v", got)
	}
}
