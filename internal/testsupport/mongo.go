//go:build integration

// Package testsupport provides container harnesses for integration
// tests.
package testsupport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// StartMongo launches a MongoDB container, registers its teardown on
// the test, and returns the container plus the connection string.
func StartMongo(ctx context.Context, t *testing.T) (*mongodb.MongoDBContainer, string) {
	t.Helper()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	return container, uri
}
