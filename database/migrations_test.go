package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrations_AreEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(Migrations, MigrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		data, err := fs.ReadFile(Migrations, MigrationsDir+"/"+e.Name())
		require.NoError(t, err)
		require.True(t, strings.Contains(string(data), "-- +goose Up"), e.Name())
		require.True(t, strings.Contains(string(data), "-- +goose Down"), e.Name())
	}
}
