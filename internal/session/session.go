// Package session holds the locally persisted identity of the signed-in user.
package session

const recordKey = "kalasetu_user"

// Roles fixed at signup. The client trusts the cached role after sign-in;
// it is never re-validated against the backend.
const (
	RoleArtisan  = "artisan"
	RoleMentor   = "mentor"
	RoleInvestor = "investor"
)

// Record is the cached identity of the signed-in user. It exists in storage
// exactly while the user is signed in, and is always replaced wholesale.
type Record struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Storage is the narrow persisted-store surface the client needs. go-app's
// BrowserStorage (ctx.LocalStorage()) satisfies it.
type Storage interface {
	Set(k string, v any) error
	Get(k string, v any) error
	Del(k string)
}

type Store struct {
	storage Storage
}

func NewStore(storage Storage) Store {
	return Store{storage: storage}
}

// Get resolves the persisted record. A missing or malformed record means
// "not signed in"; it never returns an error.
func (s Store) Get() (Record, bool) {
	var r Record
	if err := s.storage.Get(recordKey, &r); err != nil {
		return Record{}, false
	}
	if r.UID == "" || r.Role == "" {
		return Record{}, false
	}
	return r, true
}

func (s Store) Set(r Record) error {
	return s.storage.Set(recordKey, r)
}

func (s Store) Clear() {
	s.storage.Del(recordKey)
}
