package migrations

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	migs, err := NewMigrator(nil).Load()
	require.NoError(t, err)
	require.NotEmpty(t, migs)

	assert.Equal(t, "001", migs[0].Version)
	for _, table := range []string{"students", "teachers", "admins", "complaints", "teacher_complaints", "resources"} {
		assert.Contains(t, migs[0].SQL, "CREATE TABLE IF NOT EXISTS "+table+" ")
	}
	assert.Equal(t, 2, strings.Count(migs[0].SQL, "'Pending', 'In Progress', 'Resolved', 'Rejected'"))
}

func TestLoad_OrdersByFilename(t *testing.T) {
	source := fstest.MapFS{
		"m/002_more.sql":  {Data: []byte("SELECT 2;")},
		"m/001_first.sql": {Data: []byte("SELECT 1;")},
		"m/README.md":     {Data: []byte("ignored")},
	}

	migs, err := NewMigratorFS(nil, source, "m").Load()
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, "001", migs[0].Version)
	assert.Equal(t, "002_more.sql", migs[1].Name)
}

func TestLoad_DuplicateVersion(t *testing.T) {
	source := fstest.MapFS{
		"m/001_a.sql": {Data: []byte("SELECT 1;")},
		"m/001_b.sql": {Data: []byte("SELECT 1;")},
	}

	_, err := NewMigratorFS(nil, source, "m").Load()
	assert.Error(t, err)
}
