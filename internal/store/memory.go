package store

import (
	"context"
	"sync"

	"dungeonshelf_back_end/internal/models"
)

// MemoryCredentials est l'implémentation en mémoire de Credentials, utilisée
// par les tests. Même contrat que ScyllaCredentials, y compris l'insertion
// conditionnelle.
type MemoryCredentials struct {
	mu    sync.Mutex
	users map[string]string

	// BeforePut, si défini, est appelé au début de Put avant la vérification
	// conditionnelle. Permet de simuler une inscription concurrente gagnante
	// entre la pré-vérification Exists du handler et l'insertion.
	BeforePut func()
}

func NewMemoryCredentials() *MemoryCredentials {
	return &MemoryCredentials{users: make(map[string]string)}
}

func (m *MemoryCredentials) Exists(_ context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.users[name]
	return ok, nil
}

func (m *MemoryCredentials) Get(_ context.Context, name string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	hash, ok := m.users[name]
	if !ok {
		return nil, ErrNotFound
	}
	return &models.User{Name: name, PasswordHash: hash}, nil
}

func (m *MemoryCredentials) Put(_ context.Context, name, passwordHash string) error {
	if m.BeforePut != nil {
		m.BeforePut()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[name]; ok {
		return ErrAlreadyExists
	}
	m.users[name] = passwordHash
	return nil
}

// MemoryCatalog conserve l'ordre d'insertion, comme l'ordre natif d'un scan.
type MemoryCatalog struct {
	mu     sync.Mutex
	comics []models.ComicIssue
}

func NewMemoryCatalog(comics ...models.ComicIssue) *MemoryCatalog {
	return &MemoryCatalog{comics: comics}
}

func (m *MemoryCatalog) ListAll(_ context.Context) ([]models.ComicIssue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.ComicIssue, len(m.comics))
	copy(out, m.comics)
	return out, nil
}
