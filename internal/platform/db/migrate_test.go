package db

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func TestLoadMigrations_SortOrder(t *testing.T) {
	fsys := mapFS(map[string]string{
		"010_indexes.sql":  "SELECT 10;",
		"002_medicine.sql": "SELECT 2;",
		"001_pharmacy.sql": "SELECT 1;",
		"005_seed.sql":     "SELECT 5;",
	})

	migrations, err := NewMigrator(nil, fsys).LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 4)

	versions := make([]int, 0, len(migrations))
	for _, m := range migrations {
		versions = append(versions, m.Version)
	}
	assert.Equal(t, []int{1, 2, 5, 10}, versions)
	assert.Equal(t, "001_pharmacy.sql", migrations[0].Name)
	assert.Equal(t, "SELECT 1;", migrations[0].SQL)
}

func TestLoadMigrations_SkipsInvalidNames(t *testing.T) {
	fsys := mapFS(map[string]string{
		"001_valid.sql":      "SELECT 1;",
		"readme.sql":         "-- no version prefix",
		"notes.txt":          "not sql",
		"abc_invalid.sql":    "-- non-numeric prefix",
		"002_also_valid.sql": "SELECT 2;",
	})

	migrations, err := NewMigrator(nil, fsys).LoadMigrations()
	require.NoError(t, err)
	assert.Len(t, migrations, 2)
}

func TestLoadMigrations_DuplicateVersion(t *testing.T) {
	fsys := mapFS(map[string]string{
		"001_a.sql":  "SELECT 1;",
		"0001_b.sql": "SELECT 1;",
	})
	_, err := NewMigrator(nil, fsys).LoadMigrations()
	assert.Error(t, err)
}

func TestLoadMigrations_Empty(t *testing.T) {
	migrations, err := NewMigrator(nil, fstest.MapFS{}).LoadMigrations()
	require.NoError(t, err)
	assert.Empty(t, migrations)
}

func TestBuildStatus(t *testing.T) {
	migrations := []Migration{
		{Version: 1, Name: "001_pharmacy.sql"},
		{Version: 2, Name: "002_indexes.sql"},
	}
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	statuses := buildStatus(migrations, map[int]time.Time{1: at})
	require.Len(t, statuses, 2)

	assert.True(t, statuses[0].Applied)
	require.NotNil(t, statuses[0].AppliedAt)
	assert.True(t, statuses[0].AppliedAt.Equal(at))

	assert.False(t, statuses[1].Applied)
	assert.Nil(t, statuses[1].AppliedAt)
}
