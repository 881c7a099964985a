//go:build integration

package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"example.com/exercisetracker/internal/domain"
	"example.com/exercisetracker/internal/testsupport"
)

func TestRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, uri := testsupport.StartMongo(ctx, t)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	repo := NewRepository(client.Database("exercise_tracker_test"))

	user := domain.User{
		ID:        uuid.NewString(),
		Username:  "integration",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.CreateUser(ctx, user))

	stored, err := repo.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, user.Username, stored.Username)

	missing, err := repo.GetUser(ctx, uuid.NewString())
	require.NoError(t, err)
	require.Nil(t, missing)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, user.ID, users[0].ID)

	dates := []time.Time{
		time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2022, time.December, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	for _, date := range dates {
		require.NoError(t, repo.CreateExercise(ctx, domain.Exercise{
			ID:          uuid.NewString(),
			UserID:      user.ID,
			Description: "session",
			Duration:    30,
			Date:        date,
		}))
	}

	from := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
	exercises, err := repo.ListExercises(ctx, domain.LogFilter{
		UserID: user.ID,
		From:   &from,
		To:     &to,
	})
	require.NoError(t, err)
	require.Len(t, exercises, 3, "bounds are inclusive on both ends")
	require.True(t, exercises[0].Date.Equal(from), "results sorted ascending by date")
	require.True(t, exercises[2].Date.Equal(to))

	capped, err := repo.ListExercises(ctx, domain.LogFilter{UserID: user.ID, Limit: 2})
	require.NoError(t, err)
	require.Len(t, capped, 2)

	all, err := repo.ListExercises(ctx, domain.LogFilter{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, all, 5)

	other, err := repo.ListExercises(ctx, domain.LogFilter{UserID: uuid.NewString()})
	require.NoError(t, err)
	require.Empty(t, other)
}
