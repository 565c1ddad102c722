package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/denmor86/calc-web/internal/logger"
	"github.com/denmor86/calc-web/internal/storage"
)

// StorageKey - ключ токена сессии в локальном хранилище
const StorageKey = "auth-session-id"

// Store - токен сессии в памяти с сохранением в локальное хранилище.
// Реализует client.TokenProvider.
type Store struct {
	mu      sync.RWMutex
	token   string
	storage storage.LocalStorage
}

// NewStore - создаёт хранилище сессии и читает сохранённый токен
func NewStore(ctx context.Context, st storage.LocalStorage) (*Store, error) {
	token, err := st.GetItem(ctx, StorageKey)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if token != "" {
		logger.Debug("Session restored from local storage")
	}
	return &Store{token: token, storage: st}, nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated - есть ли активная сессия
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// Save - запоминает токен после входа
func (s *Store) Save(ctx context.Context, token string) error {
	if err := s.storage.SetItem(ctx, StorageKey, token); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// Clear - забывает токен. Токен в памяти сбрасывается даже при ошибке хранилища.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if err := s.storage.RemoveItem(ctx, StorageKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
