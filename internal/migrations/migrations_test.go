package migrations

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-finder/backend/internal/testhelpers"
)

func TestLoadEmbedded(t *testing.T) {
	all, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	first := all[0]
	assert.Equal(t, "0001", first.Version)
	assert.Equal(t, "0001_create_favourite_recipes", first.Name)
	assert.Contains(t, first.Up, "CREATE TABLE IF NOT EXISTS favourite_recipes")
	assert.Contains(t, first.Down, "DROP TABLE IF EXISTS favourite_recipes")
}

func TestLoadSortsAndPairs(t *testing.T) {
	fsys := fstest.MapFS{
		"m/0002_second.up.sql":   {Data: []byte("up 2")},
		"m/0001_first.up.sql":    {Data: []byte("up 1")},
		"m/0001_first.down.sql":  {Data: []byte("down 1")},
		"m/README.md":            {Data: []byte("ignored")},
		"m/0002_second.down.sql": {Data: []byte("down 2")},
	}

	all, err := load(fsys, "m")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, Migration{Version: "0001", Name: "0001_first", Up: "up 1", Down: "down 1"}, all[0])
	assert.Equal(t, Migration{Version: "0002", Name: "0002_second", Up: "up 2", Down: "down 2"}, all[1])
}

func TestLoadRejectsMissingUp(t *testing.T) {
	fsys := fstest.MapFS{
		"m/0001_first.down.sql": {Data: []byte("down 1")},
	}

	_, err := load(fsys, "m")
	assert.ErrorContains(t, err, "has no up file")
}

func TestLoadRejectsUnversionedFile(t *testing.T) {
	fsys := fstest.MapFS{
		"m/first.up.sql": {Data: []byte("up")},
	}

	_, err := load(fsys, "m")
	assert.ErrorContains(t, err, "expected VERSION_name")
}

func TestUpAndDown(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	db, err := sql.Open("postgres", testhelpers.StartPostgres(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	ctx := context.Background()

	applied, err := Up(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_create_favourite_recipes"}, applied)

	applied, err = Up(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, applied)

	_, err = db.ExecContext(ctx, "INSERT INTO favourite_recipes (recipe_id) VALUES ($1)", "52772")
	require.NoError(t, err)

	rolled, err := Down(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "0001_create_favourite_recipes", rolled)

	_, err = Down(ctx, db)
	assert.ErrorIs(t, err, ErrNothingToRollback)
}
