package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
	"imsweather.app/internal/core/cities"
	"imsweather.app/internal/core/entry"
	"imsweather.app/internal/core/sensor"
	"imsweather.app/pkg/errors"
)

// EntrySetup creates entries from imported configuration
type EntrySetup interface {
	Setup(ctx context.Context, params entry.SetupParams) (*entry.Entry, error)
}

// ImportedEntry is one platform block of a legacy YAML configuration
type ImportedEntry struct {
	Name                string   `yaml:"name"`
	City                string   `yaml:"city"`
	Language            string   `yaml:"language"`
	Mode                string   `yaml:"mode"`
	UpdateInterval      int      `yaml:"update_interval"`
	ImagesPath          string   `yaml:"images_path"`
	MonitoredConditions []string `yaml:"monitored_conditions"`
}

// ImportFile lists legacy weather and sensor platform configurations
type ImportFile struct {
	Weather []ImportedEntry `yaml:"weather"`
	Sensor  []ImportedEntry `yaml:"sensor"`
}

// ImportResult counts the outcome of an import run
type ImportResult struct {
	Imported int
	Skipped  int
	Failed   int
}

// LoadImportFile reads and parses a YAML import file
func LoadImportFile(path string) (*ImportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to read import file "+path, err)
	}

	var file ImportFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.NewConfigurationError("failed to parse import file "+path, err)
	}
	return &file, nil
}

// ImportEntries sets up every entry of the file. Entries that already exist
// are skipped; an entry stored in setup retry state counts as imported.
func ImportEntries(ctx context.Context, setup EntrySetup, file *ImportFile) ImportResult {
	var result ImportResult

	blocks := []struct {
		platform string
		entries  []ImportedEntry
	}{
		{sensor.PlatformWeather, file.Weather},
		{sensor.PlatformSensor, file.Sensor},
	}

	for _, block := range blocks {
		for i, imported := range block.entries {
			params := imported.toParams(block.platform)
			_, err := setup.Setup(ctx, params)

			switch {
			case err == nil:
				result.Imported++
			case errors.IsAlreadyExistsError(err):
				slog.Info("Imported entry already configured", "city", params.CityID, "language", params.Language)
				result.Skipped++
			case errors.IsInitializationError(err):
				slog.Warn("Imported entry stored but not ready", "city", params.CityID, "error", err)
				result.Imported++
			default:
				slog.Error("Failed to import entry",
					"platform", block.platform,
					"index", i,
					"city", params.CityID,
					"error", err)
				result.Failed++
			}
		}
	}
	return result
}

func (e ImportedEntry) toParams(platform string) entry.SetupParams {
	city := e.City
	if city == "" {
		city = cities.DefaultCityID
	}
	return entry.SetupParams{
		Name:                e.Name,
		CityID:              city,
		Language:            e.Language,
		Mode:                e.Mode,
		UpdateInterval:      e.UpdateInterval,
		ImagesPath:          e.ImagesPath,
		Platforms:           []string{platform},
		MonitoredConditions: e.MonitoredConditions,
	}
}

func runImport(ctx context.Context, setup EntrySetup, path string) error {
	file, err := LoadImportFile(path)
	if err != nil {
		return err
	}

	result := ImportEntries(ctx, setup, file)
	slog.Info("YAML import finished",
		"file", path,
		"imported", result.Imported,
		"skipped", result.Skipped,
		"failed", result.Failed)
	if result.Failed > 0 {
		return fmt.Errorf("import %s: %d entries failed", path, result.Failed)
	}
	return nil
}
