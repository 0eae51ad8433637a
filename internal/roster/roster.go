package roster

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Role is the single-letter position code used throughout the app:
// P (portiere), D (difensore), C (centrocampista), A (attaccante).
type Role string

const (
	RoleGoalkeeper Role = "P"
	RoleDefender   Role = "D"
	RoleMidfielder Role = "C"
	RoleForward    Role = "A"
)

// Roles lists the valid codes in pitch order.
var Roles = []Role{RoleGoalkeeper, RoleDefender, RoleMidfielder, RoleForward}

// ParseRole validates a role code coming in over the API.
func ParseRole(code string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(code)))
	for _, known := range Roles {
		if r == known {
			return r, true
		}
	}
	return "", false
}

// Player is an immutable roster entry. The id is unique for the
// lifetime of the store.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Store is the ordered in-memory roster for one session. Insertion
// order is display order; there is no persistence.
type Store struct {
	mu      sync.RWMutex
	players []Player
}

func NewStore() *Store {
	return &Store{}
}

// Add appends a new player with a fresh id. A blank (or all-whitespace)
// name is a silent no-op; the second return reports whether a player
// was added.
func (s *Store) Add(name string, role Role) (Player, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, false
	}

	p := Player{
		ID:   uuid.NewString(),
		Name: name,
		Role: role,
	}

	s.mu.Lock()
	s.players = append(s.players, p)
	s.mu.Unlock()
	return p, true
}

// Remove deletes the player with the given id. Removing an unknown id
// is a no-op; the return reports whether anything was removed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.players {
		if p.ID == id {
			s.players = append(s.players[:i], s.players[i+1:]...)
			return true
		}
	}
	return false
}

// Players returns a snapshot of the roster in insertion order.
func (s *Store) Players() []Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Player, len(s.players))
	copy(out, s.players)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}
