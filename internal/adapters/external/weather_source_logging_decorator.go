package external

import (
	"context"
	"time"

	"imsweather.app/internal/ports"
)

// WeatherSourceLoggingDecorator decorates a weather source with structured
// logging and call metrics
type WeatherSourceLoggingDecorator struct {
	source     ports.WeatherSource
	logger     ports.Logger
	metrics    ports.MetricsCollector
	locationID string
	language   string
}

// NewWeatherSourceLoggingDecorator creates a new logging decorator for a weather source
func NewWeatherSourceLoggingDecorator(source ports.WeatherSource, locationID, language string, logger ports.Logger, metrics ports.MetricsCollector) ports.WeatherSource {
	return &WeatherSourceLoggingDecorator{
		source:     source,
		logger:     logger,
		metrics:    metrics,
		locationID: locationID,
		language:   language,
	}
}

func (d *WeatherSourceLoggingDecorator) GetCurrentAnalysis(ctx context.Context) (*ports.CurrentAnalysisData, error) {
	var result *ports.CurrentAnalysisData
	err := d.observe(ctx, "current_analysis", func() error {
		var err error
		result, err = d.source.GetCurrentAnalysis(ctx)
		return err
	}, func() []ports.Field {
		if result == nil {
			return nil
		}
		return []ports.Field{
			ports.F("temperature", result.Temperature),
			ports.F("weather_code", result.WeatherCode),
		}
	})
	return result, err
}

func (d *WeatherSourceLoggingDecorator) GetForecast(ctx context.Context) (*ports.ForecastData, error) {
	var result *ports.ForecastData
	err := d.observe(ctx, "forecast", func() error {
		var err error
		result, err = d.source.GetForecast(ctx)
		return err
	}, func() []ports.Field {
		if result == nil {
			return nil
		}
		return []ports.Field{ports.F("days", len(result.Days))}
	})
	return result, err
}

func (d *WeatherSourceLoggingDecorator) GetRadarImages(ctx context.Context) (*ports.RadarImagesData, error) {
	var result *ports.RadarImagesData
	err := d.observe(ctx, "radar_images", func() error {
		var err error
		result, err = d.source.GetRadarImages(ctx)
		return err
	}, func() []ports.Field {
		if result == nil {
			return nil
		}
		return []ports.Field{ports.F("types", len(result.Frames))}
	})
	return result, err
}

func (d *WeatherSourceLoggingDecorator) observe(ctx context.Context, call string, fn func() error, details func() []ports.Field) error {
	d.logger.Debug("IMS request started",
		ports.F("call", call),
		ports.F("location", d.locationID),
		ports.F("language", d.language),
		ports.F("event", "request"))

	startTime := time.Now()
	err := fn()
	duration := time.Since(startTime)
	d.metrics.RecordSourceCall(ctx, call, err == nil, duration)

	if err != nil {
		d.logger.Error("IMS request failed",
			ports.F("call", call),
			ports.F("location", d.locationID),
			ports.F("language", d.language),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return err
	}

	fields := []ports.Field{
		ports.F("call", call),
		ports.F("location", d.locationID),
		ports.F("language", d.language),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
	}
	d.logger.Info("IMS request completed", append(fields, details()...)...)
	return nil
}

// WeatherSourceFactoryLoggingDecorator wraps every source a factory creates
type WeatherSourceFactoryLoggingDecorator struct {
	factory ports.WeatherSourceFactory
	logger  ports.Logger
	metrics ports.MetricsCollector
}

// NewWeatherSourceFactoryLoggingDecorator creates a new logging decorator for a source factory
func NewWeatherSourceFactoryLoggingDecorator(factory ports.WeatherSourceFactory, logger ports.Logger, metrics ports.MetricsCollector) ports.WeatherSourceFactory {
	return &WeatherSourceFactoryLoggingDecorator{
		factory: factory,
		logger:  logger,
		metrics: metrics,
	}
}

func (d *WeatherSourceFactoryLoggingDecorator) NewSource(locationID, language string) ports.WeatherSource {
	return NewWeatherSourceLoggingDecorator(d.factory.NewSource(locationID, language), locationID, language, d.logger, d.metrics)
}
