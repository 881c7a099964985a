// Package domain defines the records and business logic for the
// exercise tracker.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a referenced user id does not
// resolve to a stored user.
var ErrUserNotFound = errors.New("user not found")

// Repository captures persistence operations over the two collections.
// Lookups return (nil, nil) when the record does not exist.
type Repository interface {
	CreateUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	CreateExercise(ctx context.Context, exercise Exercise) error
	ListExercises(ctx context.Context, filter LogFilter) ([]Exercise, error)
}

// Service orchestrates user and exercise workflows.
type Service struct {
	repo Repository
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateUser persists a new user. Usernames are free text: no
// uniqueness or emptiness constraint applies.
func (s *Service) CreateUser(ctx context.Context, username string) (*User, error) {
	user := User{
		ID:        uuid.NewString(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every stored user.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.ListUsers(ctx)
}

// AddExerciseInput captures the payload from the API layer.
// A zero Date means "the moment of creation".
type AddExerciseInput struct {
	UserID      string
	Description string
	Duration    int
	Date        time.Time
}

// AddExercise attaches an exercise to an existing user. The user
// lookup is an explicit existence check; there is no store-level
// foreign key.
func (s *Service) AddExercise(ctx context.Context, input AddExerciseInput) (*User, *Exercise, error) {
	user, err := s.repo.GetUser(ctx, input.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	exercise := Exercise{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Description: input.Description,
		Duration:    input.Duration,
		Date:        date,
	}
	if err := s.repo.CreateExercise(ctx, exercise); err != nil {
		return nil, nil, err
	}
	return user, &exercise, nil
}

// GetLog returns a user's exercises under the filter's date-range and
// count constraints. The filter's UserID is overwritten with the
// resolved user's id.
func (s *Service) GetLog(ctx context.Context, userID string, filter LogFilter) (*User, []Exercise, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	filter.UserID = user.ID
	exercises, err := s.repo.ListExercises(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return user, exercises, nil
}
