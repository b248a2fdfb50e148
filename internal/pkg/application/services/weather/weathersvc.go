package weathersvc

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.weather.com/v3/wx"

const (
	currentPath  = "/observations/current"
	forecastPath = "/forecast/daily/5day"
	hourlyPath   = "/forecast/hourly/2day"
)

var tracer = otel.Tracer("wu-weather-client")

var httpClient = http.Client{
	Transport: otelhttp.NewTransport(http.DefaultTransport),
	Timeout:   30 * time.Second,
}

type WeatherService interface {
	FetchAll(ctx context.Context) (*WeatherSnapshot, error)
}

func NewWeatherService(baseURL, geocode, apiKey, language, units string) WeatherService {
	return &weatherSvc{
		baseURL:  baseURL,
		geocode:  geocode,
		apiKey:   apiKey,
		language: language,
		units:    units,
		limiter:  rate.NewLimiter(rate.Limit(2), 3),
	}
}

type weatherSvc struct {
	baseURL  string
	geocode  string
	apiKey   string
	language string
	units    string
	limiter  *rate.Limiter
}

// FetchAll retrieves current conditions, the daily forecast and the hourly
// forecast, and assembles them into one snapshot. The three fetches are
// independent and run concurrently. A daily forecast failure fails the whole
// run; current conditions degrade to absent and hourly to empty.
func (ws *weatherSvc) FetchAll(ctx context.Context) (*WeatherSnapshot, error) {
	log := logging.GetFromContext(ctx)

	var (
		wg          sync.WaitGroup
		current     *CurrentConditions
		forecast    []DayForecast
		rawForecast []byte
		hourly      []HourForecast
		forecastErr error
	)

	wg.Add(3)

	go func() {
		defer wg.Done()

		c, err := ws.getCurrentConditions(ctx)
		if err != nil {
			log.Warn("failed to retrieve current conditions", "err", err.Error())
			return
		}
		current = c
	}()

	go func() {
		defer wg.Done()
		forecast, rawForecast, forecastErr = ws.getDailyForecast(ctx)
	}()

	go func() {
		defer wg.Done()

		h, err := ws.getHourlyForecast(ctx)
		if err != nil {
			log.Warn("failed to retrieve hourly forecast", "err", err.Error())
			hourly = []HourForecast{}
			return
		}
		hourly = h
	}()

	wg.Wait()

	if forecastErr != nil {
		return nil, forecastErr
	}

	snapshot := &WeatherSnapshot{
		Current:     current,
		Forecast:    forecast,
		HourlyToday: hourly,
		RawForecast: rawForecast,
	}

	if current != nil {
		snapshot.RawCurrent = map[string]any{
			"temperature":    current.Temperature,
			"feels_like":     current.FeelsLike,
			"humidity":       current.Humidity,
			"wind_speed":     current.WindSpeed,
			"wind_direction": current.WindDirection,
			"uv_index":       current.UVIndex,
			"condition":      current.Condition,
			"icon_code":      current.IconCode,
			"pressure":       current.Pressure,
			"visibility":     current.Visibility,
		}
	}

	return snapshot, nil
}

func (ws *weatherSvc) endpointURL(path string) string {
	params := url.Values{}
	params.Set("geocode", ws.geocode)
	params.Set("format", "json")
	params.Set("units", ws.units)
	params.Set("language", ws.language)
	params.Set("apiKey", ws.apiKey)

	return ws.baseURL + path + "?" + params.Encode()
}
