package sensor

// Entity platforms an entry can enable
const (
	PlatformSensor  = "Sensor"
	PlatformWeather = "Weather"
)

// Platforms lists every supported entity platform
var Platforms = []string{PlatformSensor, PlatformWeather}

// BuildOptions selects which entities are created for an entry
type BuildOptions struct {
	Name       string
	UniqueID   string
	Mode       string
	Platforms  []string
	Conditions []string
}

// EntitySet holds the entities created for one entry
type EntitySet struct {
	Sensors       []Entity
	BinarySensors []Entity
	ForecastDays  []Entity
	Weather       *WeatherEntity
}

// All returns every entity in the set
func (s *EntitySet) All() []Entity {
	all := make([]Entity, 0, len(s.Sensors)+len(s.BinarySensors)+len(s.ForecastDays)+1)
	all = append(all, s.Sensors...)
	all = append(all, s.BinarySensors...)
	all = append(all, s.ForecastDays...)
	if s.Weather != nil {
		all = append(all, s.Weather)
	}
	return all
}

// Attach subscribes every entity to coordinator updates
func (s *EntitySet) Attach() {
	for _, e := range s.All() {
		e.Attach()
	}
}

// Detach unsubscribes every entity
func (s *EntitySet) Detach() {
	for _, e := range s.All() {
		e.Detach()
	}
}

// Build creates the entities selected by opts. The sensor platform yields the
// monitored sensors and binary sensors plus one forecast day sensor per day in
// the current snapshot; an empty condition list monitors everything.
func Build(source DataSource, opts BuildOptions) *EntitySet {
	set := &EntitySet{}

	if hasPlatform(opts.Platforms, PlatformSensor) {
		monitored := func(key string) bool {
			if len(opts.Conditions) == 0 {
				return true
			}
			for _, c := range opts.Conditions {
				if c == key {
					return true
				}
			}
			return false
		}

		for _, kind := range Kinds() {
			d, _ := Describe(kind)
			if !monitored(d.Key) {
				continue
			}
			if e, err := NewSensor(source, kind); err == nil {
				set.Sensors = append(set.Sensors, e)
			}
		}
		for _, kind := range BinaryKinds() {
			d, _ := DescribeBinary(kind)
			if !monitored(d.Key) {
				continue
			}
			if e, err := NewBinarySensor(source, kind); err == nil {
				set.BinarySensors = append(set.BinarySensors, e)
			}
		}
		if snapshot := source.Data(); snapshot != nil {
			today := source.Now()
			seen := map[int]bool{}
			for _, d := range snapshot.Forecast.Days {
				offset := DaysBetween(today, d.Date, source.Location())
				if offset < 0 || seen[offset] {
					continue
				}
				seen[offset] = true
				set.ForecastDays = append(set.ForecastDays, NewForecastDaySensor(source, offset))
			}
		}
	}

	if hasPlatform(opts.Platforms, PlatformWeather) {
		set.Weather = NewWeatherEntity(source, opts.Name, opts.UniqueID, opts.Mode)
	}

	return set
}

// IsValidPlatform reports whether p is a supported platform
func IsValidPlatform(p string) bool {
	return hasPlatform(Platforms, p)
}

func hasPlatform(platforms []string, p string) bool {
	for _, candidate := range platforms {
		if candidate == p {
			return true
		}
	}
	return false
}
