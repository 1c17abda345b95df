package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

type memoryUser struct {
	User
	hash []byte
}

// MemoryStore is a bcrypt-backed in-memory user registry implementing both
// UserStore and Authenticator.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[string]*memoryUser
	nextID int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*memoryUser)}
}

// Get fetches a user by username.
func (s *MemoryStore) Get(ctx context.Context, username string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.users[normalizeUsername(username)]
	if !ok {
		return nil, ErrUserNotFound
	}
	user := entry.User
	return &user, nil
}

// Create registers a new active user with a bcrypt-hashed password.
func (s *MemoryStore) Create(ctx context.Context, username, email, password string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := normalizeUsername(username)
	if key == "" {
		return nil, fmt.Errorf("auth: username is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[key]; exists {
		return nil, ErrDuplicateUser
	}
	s.nextID++
	entry := &memoryUser{
		User: User{
			ID:       strconv.Itoa(s.nextID),
			Username: key,
			Email:    strings.TrimSpace(email),
			Active:   true,
		},
		hash: hash,
	}
	s.users[key] = entry
	user := entry.User
	return &user, nil
}

// SetActive toggles the account's enabled flag.
func (s *MemoryStore) SetActive(ctx context.Context, username string, active bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.users[normalizeUsername(username)]
	if !ok {
		return ErrUserNotFound
	}
	entry.Active = active
	return nil
}

// Authenticate compares credentials against the stored hash. Mismatches
// return (nil, nil); disabled accounts still authenticate so callers can
// report the inactive state distinctly.
func (s *MemoryStore) Authenticate(ctx context.Context, username, password string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	entry, ok := s.users[normalizeUsername(username)]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword(entry.hash, []byte(password)) != nil {
		return nil, nil
	}
	user := entry.User
	return &user, nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
