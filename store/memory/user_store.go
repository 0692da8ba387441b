// Package memory is the default in-process account store. It is seeded with
// demo accounts and loses everything on restart.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wanderai/wanderai-backend/errors"
	"github.com/wanderai/wanderai-backend/logger"
	"github.com/wanderai/wanderai-backend/store"
	"github.com/wanderai/wanderai-backend/types"
)

type UserStore struct {
	mu      sync.RWMutex
	byEmail map[string]*store.UserRecord
	byID    map[string]*store.UserRecord
}

// NewUserStore creates an empty store.
func NewUserStore() *UserStore {
	return &UserStore{
		byEmail: make(map[string]*store.UserRecord),
		byID:    make(map[string]*store.UserRecord),
	}
}

// NewSeededUserStore creates a store preloaded with the demo accounts.
func NewSeededUserStore() *UserStore {
	s := NewUserStore()
	s.seed("Admin User", "admin@wanderai.com", "admin123", types.RoleAdmin)
	s.seed("Demo User", "user@wanderai.com", "password123", types.RoleUser)
	return s
}

func (s *UserStore) seed(name, email, password string, role types.UserRole) {
	log := logger.GetLogger()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("Failed to seed demo account", "email", logger.MaskEmail(email), "error", err)
		return
	}
	record := &store.UserRecord{
		User: types.User{
			ID:        uuid.NewString(),
			Email:     email,
			Name:      name,
			Role:      role,
			CreatedAt: time.Now().UTC(),
		},
		PasswordHash: string(hash),
	}
	s.byEmail[email] = record
	s.byID[record.ID] = record
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*store.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, errors.NotFound("User", email)
	}
	clone := *record
	return &clone, nil
}

func (s *UserStore) GetByID(_ context.Context, id string) (*store.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.byID[id]
	if !ok {
		return nil, errors.NotFound("User", id)
	}
	clone := *record
	return &clone, nil
}

func (s *UserStore) Create(_ context.Context, record *store.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(record.Email))
	if _, exists := s.byEmail[email]; exists {
		return errors.Conflict("Email already registered", "an account with this email exists")
	}

	clone := *record
	clone.Email = email
	s.byEmail[email] = &clone
	s.byID[clone.ID] = &clone
	return nil
}

func (s *UserStore) List(_ context.Context) ([]*store.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*store.UserRecord, 0, len(s.byID))
	for _, record := range s.byID {
		clone := *record
		records = append(records, &clone)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

func (s *UserStore) Ping(_ context.Context) error {
	return nil
}
