package service

import (
	"fmt"
	"sort"
	"sync"

	"github.com/coding-online/certexam/internal/model"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// memoryStore holds users and the append-only result log for the transports
// that keep state in-process (mock and sheet). Nothing here is durable.
type memoryStore struct {
	mu        sync.RWMutex
	users     []model.User
	passwords map[string][]byte // email -> bcrypt hash
	results   []model.TestResult
}

func newMemoryStore() *memoryStore {
	store := &memoryStore{passwords: make(map[string][]byte)}
	// Seeded demo account, mirroring the catalog's demo deployment.
	if err := store.addUser("John Doe", "john@example.com", "password123"); err != nil {
		panic(fmt.Sprintf("seeding demo user: %v", err))
	}
	return store
}

func (s *memoryStore) authenticate(email, password string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hash, ok := s.passwords[email]
	if !ok {
		return nil, ErrAuth
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, ErrAuth
	}
	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrAuth
}

func (s *memoryStore) addUser(name, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.passwords[email]; exists {
		return ErrConflict
	}
	s.users = append(s.users, model.User{
		ID:    "user-" + uuid.NewString(),
		Name:  name,
		Email: email,
	})
	s.passwords[email] = hash
	return nil
}

func (s *memoryStore) userByEmail(email string) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, true
		}
	}
	return nil, false
}

func (s *memoryStore) appendResult(result model.TestResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
}

func (s *memoryStore) findResult(testID, userID string) (*model.TestResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.results {
		if s.results[i].TestID == testID && s.results[i].UserID == userID {
			result := s.results[i]
			return &result, true
		}
	}
	return nil, false
}

func (s *memoryStore) resultsForUser(userID string) []model.TestResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Walk backwards so equal timestamps keep newest-submitted-first order
	// under the stable sort.
	var results []model.TestResult
	for i := len(s.results) - 1; i >= 0; i-- {
		if s.results[i].UserID == userID {
			results = append(results, s.results[i])
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Timestamp.After(results[j].Timestamp)
	})
	return results
}
