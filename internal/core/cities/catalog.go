package cities

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"imsweather.app/internal/ports"
	"imsweather.app/pkg/errors"
)

const (
	// DefaultCityID is used when no city lies within MaxClosestDistanceKm
	DefaultCityID = "1"
	// MaxClosestDistanceKm bounds the closest-city match
	MaxClosestDistanceKm = 10.0
	// DefaultLanguage is used for languages the locations list is not published in
	DefaultLanguage = "en"

	earthRadiusKm = 6371.0
	cacheName     = "cities"
)

var supportedLanguages = map[string]bool{"en": true, "he": true, "ar": true}

// City is a selectable IMS location
type City struct {
	ID        string  `json:"lid"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// CatalogConfig holds catalog settings
type CatalogConfig struct {
	TTL time.Duration
}

// CatalogDependencies holds catalog collaborators
type CatalogDependencies struct {
	Source  ports.CitiesSource
	Cache   ports.CacheProvider
	Logger  ports.Logger
	Metrics ports.MetricsCollector
}

// Catalog serves the IMS locations list from a cache with a fixed TTL.
type Catalog struct {
	source  ports.CitiesSource
	cache   ports.CacheProvider
	logger  ports.Logger
	metrics ports.MetricsCollector
	ttl     time.Duration
}

func NewCatalog(cfg CatalogConfig, deps CatalogDependencies) (*Catalog, error) {
	if deps.Source == nil {
		return nil, errors.NewValidationError("cities source is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Catalog{
		source:  deps.Source,
		cache:   deps.Cache,
		logger:  deps.Logger,
		metrics: deps.Metrics,
		ttl:     ttl,
	}, nil
}

// ResolveLanguage maps a language to one the locations list is published in
func ResolveLanguage(language string) string {
	if supportedLanguages[language] {
		return language
	}
	return DefaultLanguage
}

// Cities returns the locations list, from cache when fresh
func (c *Catalog) Cities(ctx context.Context, language string) ([]City, error) {
	language = ResolveLanguage(language)
	key := cacheKey(language)

	data, err := c.cache.Get(ctx, key)
	if err == nil && data != nil {
		var cached []City
		if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
			c.metrics.RecordCacheHit(ctx, cacheName)
			return cached, nil
		}
		c.logger.Warn("Discarding unreadable cities cache entry", ports.F("key", key))
	}
	c.metrics.RecordCacheMiss(ctx, cacheName)

	return c.Refresh(ctx, language)
}

// Refresh reloads the locations list from the source and replaces the cache entry
func (c *Catalog) Refresh(ctx context.Context, language string) ([]City, error) {
	language = ResolveLanguage(language)

	fetched, err := c.source.GetCities(ctx, language)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to retrieve cities", err)
	}

	list := make([]City, 0, len(fetched))
	for _, f := range fetched {
		list = append(list, City{ID: f.ID, Name: f.Name, Latitude: f.Latitude, Longitude: f.Longitude})
	}
	sortByID(list)

	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("marshal cities: %w", err)
	}
	if err := c.cache.Set(ctx, cacheKey(language), data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache cities",
			ports.F("language", language),
			ports.F("error", err))
	}

	c.logger.Debug("Cities refreshed",
		ports.F("language", language),
		ports.F("count", len(list)))
	return list, nil
}

// Find returns the city with the given id
func (c *Catalog) Find(ctx context.Context, language, id string) (City, error) {
	list, err := c.Cities(ctx, language)
	if err != nil {
		return City{}, err
	}
	for _, city := range list {
		if city.ID == id {
			return city, nil
		}
	}
	return City{}, errors.NewNotFoundError(fmt.Sprintf("city %s not found", id))
}

// Closest returns the city nearest to the given coordinates together with its
// distance in km. Beyond MaxClosestDistanceKm the default city is returned.
func (c *Catalog) Closest(ctx context.Context, language string, lat, lon float64) (City, float64, error) {
	list, err := c.Cities(ctx, language)
	if err != nil {
		return City{}, 0, err
	}
	city, distance, ok := ClosestCity(list, lat, lon)
	if !ok {
		return City{}, 0, errors.NewNotFoundError("no cities available")
	}
	return city, distance, nil
}

// ClosestCity picks the nearest city by great-circle distance, falling back to
// the default city when the nearest one is farther than MaxClosestDistanceKm.
// When the default city is not in the list its coordinates are unknown and the
// returned distance is 0.
func ClosestCity(list []City, lat, lon float64) (City, float64, bool) {
	if len(list) == 0 {
		return City{}, 0, false
	}

	closest := list[0]
	closestDistance := math.Inf(1)
	for _, city := range list {
		d := Haversine(lat, lon, city.Latitude, city.Longitude)
		if d < closestDistance {
			closest, closestDistance = city, d
		}
	}
	if closestDistance <= MaxClosestDistanceKm {
		return closest, closestDistance, true
	}

	for _, city := range list {
		if city.ID == DefaultCityID {
			return city, Haversine(lat, lon, city.Latitude, city.Longitude), true
		}
	}
	return City{ID: DefaultCityID}, 0, true
}

// Haversine returns the great-circle distance in km between two points
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func cacheKey(language string) string {
	return "cities:" + language
}

// sortByID orders numerically when both ids are numbers
func sortByID(list []City) {
	sort.SliceStable(list, func(i, j int) bool {
		a, errA := strconv.Atoi(list[i].ID)
		b, errB := strconv.Atoi(list[j].ID)
		if errA == nil && errB == nil {
			return a < b
		}
		return list[i].ID < list[j].ID
	})
}
