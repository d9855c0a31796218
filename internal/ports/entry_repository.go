package ports

import (
	"context"
	"time"
)

// EntryData represents a configured location entry for persistence
type EntryData struct {
	ID                  string
	UniqueID            string
	Name                string
	CityID              string
	CityName            string
	Language            string
	Mode                string
	UpdateInterval      int
	ImagesPath          string
	Platforms           []string
	MonitoredConditions []string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// EntryRepository defines the contract for entry persistence
type EntryRepository interface {
	Save(ctx context.Context, entry *EntryData) error
	FindByID(ctx context.Context, id string) (*EntryData, error)
	FindByUniqueID(ctx context.Context, uniqueID string) (*EntryData, error)
	List(ctx context.Context) ([]*EntryData, error)
	Update(ctx context.Context, entry *EntryData) error
	Delete(ctx context.Context, id string) error
}
