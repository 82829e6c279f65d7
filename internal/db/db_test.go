package db

import (
	"testing"

	"movie_reviews/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.ErrorContains(t, err, "unsupported db driver")
}

func TestOpenAndMigrateSQLite(t *testing.T) {
	store, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(store) })

	require.NoError(t, Migrate(store))
	for _, table := range []string{"role", "user", "genre", "movie", "movie_genre", "review"} {
		assert.True(t, store.Migrator().HasTable(table), "table %s", table)
	}
	// Running twice is harmless
	assert.NoError(t, Migrate(store))
}

func TestConnectUsesSQLiteByDefault(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", SQLitePath: ":memory:"}
	store, err := Connect(cfg)
	require.NoError(t, err)
	defer func() { _ = Close(store) }()

	assert.Equal(t, "sqlite", store.Dialector.Name())
}
