package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"imsweather.app/internal/config"
	"imsweather.app/internal/ports"
	"imsweather.app/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(config.DatabaseConfig{
		Driver:     config.DatabaseDriverSQLite,
		SQLitePath: "file::memory:",
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() { _ = Close(db) })
	return db
}

func newEntryData(id, uniqueID string, createdAt time.Time) *ports.EntryData {
	return &ports.EntryData{
		ID:                  id,
		UniqueID:            uniqueID,
		Name:                "IMS Weather",
		CityID:              "1",
		CityName:            "Jerusalem",
		Language:            "en",
		Mode:                "daily",
		UpdateInterval:      60,
		ImagesPath:          "/tmp",
		Platforms:           []string{"Sensor", "Weather"},
		MonitoredConditions: []string{"temperature", "humidity"},
		CreatedAt:           createdAt,
		UpdatedAt:           createdAt,
	}
}

func TestEntryRepository_SaveAndFind(t *testing.T) {
	repo := NewEntryRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()
	createdAt := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	entry := newEntryData("a1", "ims-1-en-daily-Sensor+Weather-IMS Weather", createdAt)
	require.NoError(t, repo.Save(ctx, entry))

	found, err := repo.FindByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, entry.UniqueID, found.UniqueID)
	assert.Equal(t, []string{"Sensor", "Weather"}, found.Platforms)
	assert.Equal(t, []string{"temperature", "humidity"}, found.MonitoredConditions)
	assert.Equal(t, 60, found.UpdateInterval)
	assert.True(t, createdAt.Equal(found.CreatedAt))

	byUnique, err := repo.FindByUniqueID(ctx, entry.UniqueID)
	require.NoError(t, err)
	assert.Equal(t, "a1", byUnique.ID)
}

func TestEntryRepository_NotFound(t *testing.T) {
	repo := NewEntryRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "missing")
	assert.True(t, errors.IsNotFoundError(err))

	_, err = repo.FindByUniqueID(ctx, "missing")
	assert.True(t, errors.IsNotFoundError(err))

	assert.True(t, errors.IsNotFoundError(repo.Delete(ctx, "missing")))
	assert.True(t, errors.IsNotFoundError(repo.Update(ctx, newEntryData("missing", "u", time.Now()))))
}

func TestEntryRepository_DuplicateUniqueID(t *testing.T) {
	repo := NewEntryRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newEntryData("a1", "same", time.Now())))

	err := repo.Save(ctx, newEntryData("a2", "same", time.Now()))
	assert.True(t, errors.IsAlreadyExistsError(err))
}

func TestEntryRepository_ListOrdersByCreation(t *testing.T) {
	repo := NewEntryRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, newEntryData("b", "u-b", base.Add(time.Hour))))
	require.NoError(t, repo.Save(ctx, newEntryData("a", "u-a", base)))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)
}

func TestEntryRepository_UpdateAndDelete(t *testing.T) {
	repo := NewEntryRepositoryAdapter(setupTestDB(t)).(*EntryRepositoryAdapter)
	ctx := context.Background()

	entry := newEntryData("a1", "u1", time.Now().UTC())
	require.NoError(t, repo.Save(ctx, entry))

	entry.Mode = "hourly"
	entry.Platforms = []string{"Weather"}
	require.NoError(t, repo.Update(ctx, entry))

	found, err := repo.FindByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "hourly", found.Mode)
	assert.Equal(t, []string{"Weather"}, found.Platforms)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.Delete(ctx, "a1"))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestEntryRepository_Validation(t *testing.T) {
	repo := NewEntryRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	assert.True(t, errors.IsValidationError(repo.Save(ctx, nil)))
	assert.True(t, errors.IsValidationError(repo.Save(ctx, &ports.EntryData{})))
	assert.True(t, errors.IsValidationError(repo.Update(ctx, nil)))
	assert.True(t, errors.IsValidationError(repo.Delete(ctx, "")))

	_, err := repo.FindByID(ctx, "")
	assert.True(t, errors.IsValidationError(err))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: config.DatabaseDriverUnknown})
	assert.True(t, errors.IsConfigurationError(err))
}
