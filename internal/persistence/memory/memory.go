// Package memory stores users and exercises in memory for local
// development and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"example.com/exercisetracker/internal/domain"
)

// Store keeps both collections in process memory. It implements
// domain.Repository and is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	users     map[string]domain.User
	userOrder []string
	exercises []domain.Exercise
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{
		users: make(map[string]domain.User),
	}
}

// CreateUser implements domain.Repository.
func (s *Store) CreateUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; !exists {
		s.userOrder = append(s.userOrder, user.ID)
	}
	s.users[user.ID] = user
	return nil
}

// GetUser returns the user by id, or nil when absent.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// ListUsers returns every user in insertion order.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, s.users[id])
	}
	return out, nil
}

// CreateExercise implements domain.Repository.
func (s *Store) CreateExercise(ctx context.Context, exercise domain.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.exercises = append(s.exercises, exercise)
	return nil
}

// ListExercises returns the owning user's exercises inside the
// filter's date interval, sorted ascending by (date, id), capped at
// the filter's limit when positive.
func (s *Store) ListExercises(ctx context.Context, filter domain.LogFilter) ([]domain.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Exercise, 0)
	for _, exercise := range s.exercises {
		if exercise.UserID != filter.UserID {
			continue
		}
		if !filter.Matches(exercise) {
			continue
		}
		out = append(out, exercise)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}
