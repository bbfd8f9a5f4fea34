package db

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(migrations, name)
		require.NoError(t, err)
		text := string(body)
		assert.True(t, strings.Contains(text, "-- +goose Up"), name)
		assert.True(t, strings.Contains(text, "-- +goose Down"), name)
	}

	initial, err := fs.ReadFile(migrations, "migrations/00001_init.sql")
	require.NoError(t, err)
	for _, table := range []string{"customers", "bills"} {
		assert.Contains(t, string(initial), "CREATE TABLE IF NOT EXISTS "+table)
	}
}
