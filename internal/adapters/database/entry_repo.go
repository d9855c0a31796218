package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"imsweather.app/internal/ports"
	"imsweather.app/pkg/errors"
)

// EntryModel represents the database model for configured location entries
type EntryModel struct {
	ID                  string   `gorm:"primaryKey;size:36"`
	UniqueID            string   `gorm:"uniqueIndex;not null"`
	Name                string   `gorm:"not null"`
	CityID              string   `gorm:"index;not null"`
	CityName            string   `gorm:"size:255"`
	Language            string   `gorm:"size:2;not null"`
	Mode                string   `gorm:"not null"`
	UpdateInterval      int      `gorm:"not null"`
	ImagesPath          string   `gorm:"size:1024"`
	Platforms           []string `gorm:"serializer:json"`
	MonitoredConditions []string `gorm:"serializer:json"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (EntryModel) TableName() string {
	return "entries"
}

// EntryRepositoryAdapter implements the EntryRepository port using GORM
type EntryRepositoryAdapter struct {
	db *gorm.DB
}

// NewEntryRepositoryAdapter creates a new entry repository adapter
func NewEntryRepositoryAdapter(db *gorm.DB) ports.EntryRepository {
	return &EntryRepositoryAdapter{db: db}
}

// Save persists a new entry
func (r *EntryRepositoryAdapter) Save(ctx context.Context, entry *ports.EntryData) error {
	if entry == nil {
		return errors.NewValidationError("entry cannot be nil")
	}
	if entry.ID == "" {
		return errors.NewValidationError("entry ID cannot be empty")
	}

	result := r.db.WithContext(ctx).Create(r.dataToModel(entry))
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errors.NewAlreadyExistsError("entry already exists")
		}
		return errors.NewDatabaseError("failed to save entry", result.Error)
	}

	return nil
}

// FindByID retrieves an entry by its ID
func (r *EntryRepositoryAdapter) FindByID(ctx context.Context, id string) (*ports.EntryData, error) {
	if id == "" {
		return nil, errors.NewValidationError("entry ID cannot be empty")
	}

	var model EntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("entry not found")
		}
		return nil, errors.NewDatabaseError("failed to find entry by ID", result.Error)
	}

	return r.modelToData(&model), nil
}

// FindByUniqueID retrieves an entry by its uniqueness key
func (r *EntryRepositoryAdapter) FindByUniqueID(ctx context.Context, uniqueID string) (*ports.EntryData, error) {
	if uniqueID == "" {
		return nil, errors.NewValidationError("unique ID cannot be empty")
	}

	var model EntryModel
	result := r.db.WithContext(ctx).Where("unique_id = ?", uniqueID).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("entry not found")
		}
		return nil, errors.NewDatabaseError("failed to find entry by unique ID", result.Error)
	}

	return r.modelToData(&model), nil
}

// List retrieves all entries ordered by creation time
func (r *EntryRepositoryAdapter) List(ctx context.Context) ([]*ports.EntryData, error) {
	var models []EntryModel
	result := r.db.WithContext(ctx).Order("created_at, id").Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list entries", result.Error)
	}

	entries := make([]*ports.EntryData, len(models))
	for i := range models {
		entries[i] = r.modelToData(&models[i])
	}

	return entries, nil
}

// Update replaces an existing entry
func (r *EntryRepositoryAdapter) Update(ctx context.Context, entry *ports.EntryData) error {
	if entry == nil {
		return errors.NewValidationError("entry cannot be nil")
	}
	if entry.ID == "" {
		return errors.NewValidationError("entry ID cannot be empty for update")
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&EntryModel{}).Where("id = ?", entry.ID).Count(&count).Error; err != nil {
		return errors.NewDatabaseError("failed to check entry", err)
	}
	if count == 0 {
		return errors.NewNotFoundError("entry not found")
	}

	result := r.db.WithContext(ctx).Save(r.dataToModel(entry))
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errors.NewAlreadyExistsError("entry already exists")
		}
		return errors.NewDatabaseError("failed to update entry", result.Error)
	}

	return nil
}

// Delete removes an entry
func (r *EntryRepositoryAdapter) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("entry ID cannot be empty for delete")
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&EntryModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete entry", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("entry not found")
	}

	return nil
}

// Count returns the number of persisted entries
func (r *EntryRepositoryAdapter) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&EntryModel{}).Count(&count).Error; err != nil {
		return 0, errors.NewDatabaseError("failed to count entries", err)
	}
	return count, nil
}

// dataToModel converts port data to database model
func (r *EntryRepositoryAdapter) dataToModel(data *ports.EntryData) *EntryModel {
	return &EntryModel{
		ID:                  data.ID,
		UniqueID:            data.UniqueID,
		Name:                data.Name,
		CityID:              data.CityID,
		CityName:            data.CityName,
		Language:            data.Language,
		Mode:                data.Mode,
		UpdateInterval:      data.UpdateInterval,
		ImagesPath:          data.ImagesPath,
		Platforms:           data.Platforms,
		MonitoredConditions: data.MonitoredConditions,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// modelToData converts database model to port data
func (r *EntryRepositoryAdapter) modelToData(model *EntryModel) *ports.EntryData {
	return &ports.EntryData{
		ID:                  model.ID,
		UniqueID:            model.UniqueID,
		Name:                model.Name,
		CityID:              model.CityID,
		CityName:            model.CityName,
		Language:            model.Language,
		Mode:                model.Mode,
		UpdateInterval:      model.UpdateInterval,
		ImagesPath:          model.ImagesPath,
		Platforms:           model.Platforms,
		MonitoredConditions: model.MonitoredConditions,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}
