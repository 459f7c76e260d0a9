package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/lending/internal/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(&entities.LendingEvent{})
	require.NoError(t, err)

	return db
}

func TestRepository_LogEvent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	event := &entities.LendingEvent{
		EventType:   entities.LendingEventBorrow,
		Action:      "book_borrow",
		Description: "Jan Kowalski borrowed 'Pan Tadeusz'",
		BookID:      "book-1",
		PatronID:    "patron-1",
		Status:      entities.LendingStatusSuccess,
	}

	err := repo.LogEvent(event)
	require.NoError(t, err)
	assert.NotZero(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestRepository_GetEvents(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 15; i++ {
		event := &entities.LendingEvent{
			EventType: entities.LendingEventBorrow,
			Action:    "book_borrow",
			PatronID:  "patron-1",
			Status:    entities.LendingStatusSuccess,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.LogEvent(event))
	}

	t.Run("get all events", func(t *testing.T) {
		events, total, err := repo.GetEvents(50, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
		assert.Len(t, events, 15)
	})

	t.Run("default page size", func(t *testing.T) {
		events, _, err := repo.GetEvents(0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 15)
	})

	t.Run("pagination", func(t *testing.T) {
		events, total, err := repo.GetEvents(5, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
		assert.Len(t, events, 5)

		events2, _, err := repo.GetEvents(5, 5)
		require.NoError(t, err)
		assert.Len(t, events2, 5)
		assert.NotEqual(t, events[0].ID, events2[0].ID)
	})

	t.Run("order by created_at asc", func(t *testing.T) {
		events, _, err := repo.GetEvents(10, 0)
		require.NoError(t, err)
		for i := 1; i < len(events); i++ {
			assert.False(t, events[i].CreatedAt.Before(events[i-1].CreatedAt))
		}
	})
}

func TestRepository_GetEventsByType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.LogEvent(&entities.LendingEvent{
		EventType: entities.LendingEventBorrow,
		Action:    "book_borrow",
		Status:    entities.LendingStatusSuccess,
	}))
	require.NoError(t, repo.LogEvent(&entities.LendingEvent{
		EventType: entities.LendingEventReturn,
		Action:    "book_return",
		Status:    entities.LendingStatusFailed,
	}))
	require.NoError(t, repo.LogEvent(&entities.LendingEvent{
		EventType: entities.LendingEventBorrow,
		Action:    "book_borrow",
		Status:    entities.LendingStatusFailed,
	}))

	events, total, err := repo.GetEventsByType(entities.LendingEventBorrow, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, entities.LendingEventBorrow, e.EventType)
	}
}

func TestRepository_GetEventsForPatron(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.LogEvent(&entities.LendingEvent{EventType: entities.LendingEventPatronRegistered, PatronID: "jan"}))
	require.NoError(t, repo.LogEvent(&entities.LendingEvent{EventType: entities.LendingEventBorrow, PatronID: "jan"}))
	require.NoError(t, repo.LogEvent(&entities.LendingEvent{EventType: entities.LendingEventBorrow, PatronID: "anna"}))

	events, err := repo.GetEventsForPatron("jan")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, entities.LendingEventPatronRegistered, events[0].EventType)
	assert.Equal(t, entities.LendingEventBorrow, events[1].EventType)
}

func TestRepository_DeleteOldEvents(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	now := time.Now()

	oldEvent := &entities.LendingEvent{
		EventType: entities.LendingEventBorrow,
		Action:    "old_borrow",
		Status:    entities.LendingStatusSuccess,
		CreatedAt: now.Add(-48 * time.Hour),
	}
	newEvent := &entities.LendingEvent{
		EventType: entities.LendingEventReturn,
		Action:    "new_return",
		Status:    entities.LendingStatusSuccess,
		CreatedAt: now.Add(-1 * time.Hour),
	}

	require.NoError(t, repo.LogEvent(oldEvent))
	require.NoError(t, repo.LogEvent(newEvent))

	deleted, err := repo.DeleteOldEvents(now.Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	events, total, err := repo.GetEvents(50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, events, 1)
	assert.Equal(t, "new_return", events[0].Action)
}
