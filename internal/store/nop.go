package store

import (
	"sync"

	"github.com/devhire/devhire/internal/model"
)

// MemStore is an in-memory ProfileStore for ephemeral runs and tests.
// Nothing survives the process.
type MemStore struct {
	mu      sync.Mutex
	saved   []string
	liked   []string
	filter  model.Filter
	profile *model.User
	theme   string
}

var _ model.ProfileStore = (*MemStore)(nil)

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{theme: "dark"}
}

func (m *MemStore) SavedJobs() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.saved...), nil
}

func (m *MemStore) SaveJob(jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = addUnique(m.saved, jobID)
	return nil
}

func (m *MemStore) UnsaveJob(jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = remove(m.saved, jobID)
	return nil
}

func (m *MemStore) LikedJobs() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.liked...), nil
}

func (m *MemStore) LikeJob(jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.liked = addUnique(m.liked, jobID)
	return nil
}

func (m *MemStore) UnlikeJob(jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.liked = remove(m.liked, jobID)
	return nil
}

func (m *MemStore) Filter() (model.Filter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter, nil
}

func (m *MemStore) SetFilter(f model.Filter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filter = f
	return nil
}

func (m *MemStore) Profile() (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile, nil
}

func (m *MemStore) SetProfile(u model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = &u
	return nil
}

func (m *MemStore) Theme() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.theme, nil
}

func (m *MemStore) SetTheme(mode string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = mode
	return nil
}

func addUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func remove(ids []string, id string) []string {
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return kept
}
