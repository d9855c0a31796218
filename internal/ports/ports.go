package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	SourceFactory WeatherSourceFactory
	Cities        CitiesSource
	StatusProbe   StatusProbe
	Scheduler     Scheduler

	// Entries
	EntryRepository EntryRepository

	// Cache
	Cache CacheProvider

	// Infrastructure
	ConfigProvider ConfigProvider
	Metrics        MetricsCollector
	Logger         Logger
	Database       interface{}
}
