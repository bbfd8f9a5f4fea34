//go:build integration

package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/satheeshds/aguapago/config"
	"github.com/satheeshds/aguapago/db"
)

// Run with: AGUAPAGO_TEST_DATABASE_URL=postgres://... go test -tags integration ./store
// The tables in that database are truncated before every subtest.
func TestPostgresContract(t *testing.T) {
	url := os.Getenv("AGUAPAGO_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("AGUAPAGO_TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := db.Open(ctx, config.DatabaseConfig{Driver: config.DriverPostgres, URL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, db.Migrate(ctx, pool))

	testStoreContract(t, func(t *testing.T) *Store {
		_, err := pool.Exec(ctx, "TRUNCATE bills, customers")
		require.NoError(t, err)
		return NewPostgres(pool)
	})
}
