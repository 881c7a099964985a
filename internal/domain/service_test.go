package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	users           map[string]User
	createdUsers    []User
	createdExercise []Exercise
	listFilter      LogFilter
	listResult      []Exercise
	failWith        error
}

func newStubRepo() *stubRepo {
	return &stubRepo{users: make(map[string]User)}
}

func (r *stubRepo) CreateUser(ctx context.Context, user User) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.users[user.ID] = user
	r.createdUsers = append(r.createdUsers, user)
	return nil
}

func (r *stubRepo) GetUser(ctx context.Context, id string) (*User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *stubRepo) ListUsers(ctx context.Context) ([]User, error) {
	return r.createdUsers, nil
}

func (r *stubRepo) CreateExercise(ctx context.Context, exercise Exercise) error {
	r.createdExercise = append(r.createdExercise, exercise)
	return nil
}

func (r *stubRepo) ListExercises(ctx context.Context, filter LogFilter) ([]Exercise, error) {
	r.listFilter = filter
	return r.listResult, nil
}

func TestCreateUserMintsDistinctIDs(t *testing.T) {
	repo := newStubRepo()
	service := NewService(repo)

	first, err := service.CreateUser(context.Background(), "alpha")
	require.NoError(t, err)
	second, err := service.CreateUser(context.Background(), "alpha")
	require.NoError(t, err)

	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, second.ID)
	require.NotEqual(t, first.ID, second.ID, "duplicate usernames still get distinct ids")
	require.Len(t, repo.createdUsers, 2)
}

func TestAddExerciseUnknownUser(t *testing.T) {
	repo := newStubRepo()
	service := NewService(repo)

	_, _, err := service.AddExercise(context.Background(), AddExerciseInput{
		UserID:      "missing",
		Description: "run",
		Duration:    30,
	})
	require.ErrorIs(t, err, ErrUserNotFound)
	require.Empty(t, repo.createdExercise, "nothing should persist for an unknown user")
}

func TestAddExerciseDefaultsDate(t *testing.T) {
	repo := newStubRepo()
	service := NewService(repo)

	user, err := service.CreateUser(context.Background(), "beta")
	require.NoError(t, err)

	before := time.Now().UTC()
	_, exercise, err := service.AddExercise(context.Background(), AddExerciseInput{
		UserID:      user.ID,
		Description: "swim",
		Duration:    25,
	})
	require.NoError(t, err)
	require.False(t, exercise.Date.Before(before))
	require.False(t, exercise.Date.After(time.Now().UTC()))
}

func TestAddExerciseKeepsSuppliedDate(t *testing.T) {
	repo := newStubRepo()
	service := NewService(repo)

	user, err := service.CreateUser(context.Background(), "gamma")
	require.NoError(t, err)

	date := time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)
	_, exercise, err := service.AddExercise(context.Background(), AddExerciseInput{
		UserID:      user.ID,
		Description: "run",
		Duration:    30,
		Date:        date,
	})
	require.NoError(t, err)
	require.True(t, exercise.Date.Equal(date))
	require.Equal(t, "Mon May 01 2023", exercise.DateString())
	require.Equal(t, user.ID, exercise.UserID)
}

func TestGetLogResolvesOwner(t *testing.T) {
	repo := newStubRepo()
	service := NewService(repo)

	user, err := service.CreateUser(context.Background(), "delta")
	require.NoError(t, err)

	from := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	owner, _, err := service.GetLog(context.Background(), user.ID, LogFilter{
		UserID: "ignored",
		From:   &from,
		Limit:  2,
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, owner.ID)
	require.Equal(t, user.ID, repo.listFilter.UserID, "filter owner must be the resolved user")
	require.Equal(t, 2, repo.listFilter.Limit)
	require.Equal(t, from, *repo.listFilter.From)

	_, _, err = service.GetLog(context.Background(), "missing", LogFilter{})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserErrorPropagates(t *testing.T) {
	repo := newStubRepo()
	repo.failWith = errors.New("store unreachable")
	service := NewService(repo)

	_, _, err := service.AddExercise(context.Background(), AddExerciseInput{UserID: "any"})
	require.EqualError(t, err, "store unreachable")
}

func TestLogFilterMatches(t *testing.T) {
	from := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
	filter := LogFilter{From: &from, To: &to}

	inside := Exercise{Date: time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)}
	require.True(t, filter.Matches(inside))

	onLower := Exercise{Date: from}
	require.True(t, filter.Matches(onLower), "lower bound is inclusive")

	onUpper := Exercise{Date: to}
	require.True(t, filter.Matches(onUpper), "upper bound is inclusive")

	before := Exercise{Date: time.Date(2022, time.December, 31, 0, 0, 0, 0, time.UTC)}
	require.False(t, filter.Matches(before))

	after := Exercise{Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)}
	require.False(t, filter.Matches(after))

	require.True(t, LogFilter{}.Matches(before), "open interval matches everything")
}
