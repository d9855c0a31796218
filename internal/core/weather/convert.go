package weather

import "imsweather.app/internal/ports"

func convertFromPortsCurrent(data *ports.CurrentAnalysisData) *CurrentWeather {
	return &CurrentWeather{
		Location:        data.Location,
		Temperature:     data.Temperature,
		FeelsLike:       data.FeelsLike,
		Humidity:        data.Humidity,
		WindSpeed:       data.WindSpeed,
		WindDirectionID: data.WindDirectionID,
		Rain:            data.Rain,
		UVIndex:         data.UVIndex,
		UVLevel:         data.UVLevel,
		MaxUVIndex:      data.MaxUVIndex,
		DewPoint:        data.DewPoint,
		HeatStress:      data.HeatStress,
		HeatStressLevel: data.HeatStressLevel,
		WindChill:       data.WindChill,
		WeatherCode:     data.WeatherCode,
		Description:     data.Description,
		ForecastTime:    data.ForecastTime,
	}
}

func convertFromPortsForecast(data *ports.ForecastData) Forecast {
	if data == nil || len(data.Days) == 0 {
		return Forecast{}
	}
	days := make([]DailyForecast, 0, len(data.Days))
	for _, d := range data.Days {
		day := DailyForecast{
			Date:               d.Date,
			Day:                d.Day,
			MinimumTemperature: d.MinimumTemperature,
			MaximumTemperature: d.MaximumTemperature,
			MaximumUVIndex:     d.MaximumUVIndex,
			WeatherCode:        d.WeatherCode,
			Weather:            d.Weather,
			Description:        d.Description,
		}
		if len(d.Hours) > 0 {
			day.Hours = make([]HourlyForecast, 0, len(d.Hours))
			for _, h := range d.Hours {
				day.Hours = append(day.Hours, HourlyForecast{
					Hour:               h.Hour,
					ForecastTime:       h.ForecastTime,
					Temperature:        h.Temperature,
					PreciseTemperature: h.PreciseTemperature,
					RelativeHumidity:   h.RelativeHumidity,
					Rain:               h.Rain,
					RainChance:         h.RainChance,
					WindSpeed:          h.WindSpeed,
					WindDirectionID:    h.WindDirectionID,
					UVIndex:            h.UVIndex,
					WeatherCode:        h.WeatherCode,
					Weather:            h.Weather,
				})
			}
		}
		days = append(days, day)
	}
	return Forecast{Days: days}
}

func convertFromPortsImages(data *ports.RadarImagesData) *RadarImages {
	if data == nil {
		return &RadarImages{}
	}
	frames := make(map[string][]RadarFrame, len(data.Frames))
	for kind, list := range data.Frames {
		converted := make([]RadarFrame, 0, len(list))
		for _, f := range list {
			converted = append(converted, RadarFrame{URL: f.URL, ForecastTime: f.ForecastTime})
		}
		frames[kind] = converted
	}
	return &RadarImages{Frames: frames}
}
