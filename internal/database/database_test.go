package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lending/internal/entities"
)

func TestNewDatabase_InMemory(t *testing.T) {
	db, err := NewQuietDatabase(InMemoryPath)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.DB.Migrator().HasTable(&entities.LendingEvent{}))
	assert.NoError(t, db.Ping())

	require.NoError(t, db.DB.Create(&entities.LendingEvent{EventType: entities.LendingEventBorrow}).Error)

	var count int64
	require.NoError(t, db.DB.Model(&entities.LendingEvent{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestNewDatabase_EmptyPathIsInMemory(t *testing.T) {
	db, err := NewQuietDatabase("")
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.DB.Migrator().HasTable("lending_events"))
}

func TestNewDatabase_File(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestDatabase_PingAfterClose(t *testing.T) {
	db, err := NewQuietDatabase(InMemoryPath)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	assert.Error(t, db.Ping())
}
