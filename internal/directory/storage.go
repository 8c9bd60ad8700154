package directory

import (
	"sort"
	"sync"

	"teamscore/internal/utility"
)

// Member is a directory entry used to decorate leaderboard and global views
// with display names.
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Store struct {
	mu      sync.Mutex
	members map[string]*Member
}

func NewStore() *Store {
	return &Store{
		members: make(map[string]*Member),
	}
}

// Add registers a member, assigning a display color on first registration.
// Re-registering updates the name and keeps the existing color.
func (s *Store) Add(id string, name string) *Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.members[id]; ok {
		m.Name = name
		return m
	}
	member := &Member{ID: id, Name: name, Color: utility.RandomColorHex()}
	s.members[id] = member
	return member
}

func (s *Store) Get(id string) *Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members[id]
}

func (s *Store) GetList() []*Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	memberList := make([]*Member, 0, len(s.members))
	for _, m := range s.members {
		memberList = append(memberList, m)
	}
	sort.Slice(memberList, func(i, j int) bool { return memberList[i].Name < memberList[j].Name })
	return memberList
}

// Resolve implements rank.Resolver.
func (s *Store) Resolve(id string) (name, color string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[id]
	if !ok {
		return "", "", false
	}
	return m.Name, m.Color, true
}

// Load seeds the directory with previously persisted members. Intended for
// startup, before the store is shared.
func (s *Store) Load(members []Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range members {
		member := m
		s.members[m.ID] = &member
	}
}
