package external

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"imsweather.app/internal/ports"
	"imsweather.app/pkg/errors"
)

// IMSWeatherSource implements the WeatherSource port for one IMS location
type IMSWeatherSource struct {
	client     *IMSClient
	locationID string
	language   string
}

// IMSSourceFactory creates IMS weather sources sharing one client
type IMSSourceFactory struct {
	client *IMSClient
}

// NewIMSSourceFactory creates a new IMS source factory
func NewIMSSourceFactory(client *IMSClient) *IMSSourceFactory {
	return &IMSSourceFactory{client: client}
}

// NewSource returns a source bound to a location and language
func (f *IMSSourceFactory) NewSource(locationID, language string) ports.WeatherSource {
	return &IMSWeatherSource{
		client:     f.client,
		locationID: locationID,
		language:   language,
	}
}

func (s *IMSWeatherSource) forecastURL() string {
	return s.client.url(s.language, "forecast_data/"+s.locationID)
}

func (s *IMSWeatherSource) fetchForecastData(ctx context.Context) (*imsForecastResponse, error) {
	var payload imsForecastResponse
	if err := s.client.getJSON(ctx, s.forecastURL(), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetCurrentAnalysis retrieves the latest observed conditions
func (s *IMSWeatherSource) GetCurrentAnalysis(ctx context.Context) (*ports.CurrentAnalysisData, error) {
	payload, err := s.fetchForecastData(ctx)
	if err != nil {
		return nil, err
	}

	a := payload.Data.Analysis
	if a.ForecastTime == "" && a.Temperature.ptr() == nil {
		return nil, errors.NewExternalAPIError(
			fmt.Sprintf("IMS returned no analysis for location %s", s.locationID), nil)
	}

	code := a.WeatherCode.String()
	return &ports.CurrentAnalysisData{
		Location:        a.Name,
		Temperature:     a.Temperature.ptr(),
		FeelsLike:       a.FeelsLike.ptr(),
		Humidity:        a.Humidity.ptr(),
		WindSpeed:       a.WindSpeed.ptr(),
		WindDirectionID: a.WindDirectionID.intPtr(),
		Rain:            a.Rain.ptr(),
		UVIndex:         a.UVIndex.ptr(),
		UVLevel:         a.UVLevel,
		MaxUVIndex:      a.MaxUVIndex.ptr(),
		DewPoint:        a.DewPoint.ptr(),
		HeatStress:      a.HeatStress.ptr(),
		HeatStressLevel: a.HeatStressLevel.String(),
		WindChill:       a.WindChill.ptr(),
		WeatherCode:     code,
		Description:     payload.Data.WeatherCodes[code].Description,
		ForecastTime:    parseIMSTime(a.ForecastTime, s.client.Location()),
	}, nil
}

// GetForecast retrieves the multi-day forecast ordered by date and hour
func (s *IMSWeatherSource) GetForecast(ctx context.Context) (*ports.ForecastData, error) {
	payload, err := s.fetchForecastData(ctx)
	if err != nil {
		return nil, err
	}

	loc := s.client.Location()
	codes := payload.Data.WeatherCodes
	forecast := &ports.ForecastData{}

	for _, key := range sortedKeys(payload.Data.ForecastData) {
		day := payload.Data.ForecastData[key]
		dateValue := day.Daily.ForecastDate
		if dateValue == "" {
			dateValue = key
		}
		date := parseIMSTime(dateValue, loc)
		if date.IsZero() {
			return nil, errors.NewExternalAPIError("invalid forecast date "+dateValue, nil)
		}

		code := day.Daily.WeatherCode.String()
		daily := ports.DailyForecastData{
			Date:               date,
			Day:                date.Weekday().String(),
			MinimumTemperature: day.Daily.MinimumTemperature.ptr(),
			MaximumTemperature: day.Daily.MaximumTemperature.ptr(),
			MaximumUVIndex:     day.Daily.MaximumUVIndex.ptr(),
			WeatherCode:        code,
			Weather:            codes[code].Description,
			Description:        strings.TrimSpace(day.Country.Description),
		}

		for _, hourKey := range sortedKeys(day.Hourly) {
			h := day.Hourly[hourKey]
			label := h.Hour
			if label == "" {
				label = hourKey
			}
			hourCode := h.WeatherCode.String()
			daily.Hours = append(daily.Hours, ports.HourlyForecastData{
				Hour:               label,
				ForecastTime:       parseIMSTime(h.ForecastTime, loc),
				Temperature:        h.Temperature.ptr(),
				PreciseTemperature: h.PreciseTemperature.ptr(),
				RelativeHumidity:   h.RelativeHumidity.ptr(),
				Rain:               h.Rain.ptr(),
				RainChance:         h.RainChance.ptr(),
				WindSpeed:          h.WindSpeed.ptr(),
				WindDirectionID:    h.WindDirectionID.intPtr(),
				UVIndex:            h.UVIndex.ptr(),
				WeatherCode:        hourCode,
				Weather:            codes[hourCode].Description,
			})
		}

		forecast.Days = append(forecast.Days, daily)
	}

	return forecast, nil
}

// GetRadarImages retrieves the radar and satellite frames
func (s *IMSWeatherSource) GetRadarImages(ctx context.Context) (*ports.RadarImagesData, error) {
	var payload imsRadarResponse
	if err := s.client.getJSON(ctx, s.client.url(s.language, "radar_satellite"), &payload); err != nil {
		return nil, err
	}

	loc := s.client.Location()
	images := &ports.RadarImagesData{Frames: make(map[string][]ports.RadarFrame, len(payload.Data.Types))}
	for kind, frames := range payload.Data.Types {
		list := make([]ports.RadarFrame, 0, len(frames))
		for _, f := range frames {
			path := f.Path
			if path == "" {
				path = f.FileName
			}
			url := path
			if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
				url = s.client.BaseURL() + "/" + strings.TrimPrefix(path, "/")
			}
			list = append(list, ports.RadarFrame{
				URL:          url,
				ForecastTime: parseIMSTime(f.ForecastTime, loc),
			})
		}
		images.Frames[kind] = list
	}
	return images, nil
}

// IMSCitiesSource implements the CitiesSource port
type IMSCitiesSource struct {
	client *IMSClient
}

// NewIMSCitiesSource creates a new cities source
func NewIMSCitiesSource(client *IMSClient) *IMSCitiesSource {
	return &IMSCitiesSource{client: client}
}

// GetCities retrieves the IMS locations list in language
func (s *IMSCitiesSource) GetCities(ctx context.Context, language string) ([]ports.CityData, error) {
	var payload imsLocationsResponse
	if err := s.client.getJSON(ctx, s.client.url(language, "locations_info"), &payload); err != nil {
		return nil, err
	}
	if len(payload.Data) == 0 {
		return nil, errors.NewExternalAPIError("IMS returned an empty locations list", nil)
	}

	list := make([]ports.CityData, 0, len(payload.Data))
	for _, key := range sortedKeys(payload.Data) {
		l := payload.Data[key]
		id := l.LocationID.String()
		if id == "" {
			id = key
		}
		list = append(list, ports.CityData{
			ID:        id,
			Name:      l.Name,
			Latitude:  l.Latitude.value(),
			Longitude: l.Longitude.value(),
		})
	}
	return list, nil
}

// IMSStatusProbe implements the StatusProbe port
type IMSStatusProbe struct {
	client  *IMSClient
	timeout time.Duration
}

// NewIMSStatusProbe creates a new status probe
func NewIMSStatusProbe(client *IMSClient, timeout time.Duration) *IMSStatusProbe {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &IMSStatusProbe{client: client, timeout: timeout}
}

// IsOnline reports an error unless the forecast endpoint of cityID answers 200
func (p *IMSStatusProbe) IsOnline(ctx context.Context, language, cityID string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	status, err := p.client.status(ctx, p.client.url(language, "forecast_data/"+cityID))
	if err != nil {
		return errors.NewExternalAPIError("IMS API unreachable", err)
	}
	if status != http.StatusOK {
		return errors.NewExternalAPIError(fmt.Sprintf("IMS API returned status %d", status), nil)
	}
	return nil
}
