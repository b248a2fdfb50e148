package mqttpub

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/diwise/ingress-wunderground/internal/pkg/application/services/weather"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

type message struct {
	topic   string
	payload []byte
	retain  bool
}

// PublishWeather fans one snapshot out over the full topic set: discovery
// documents first (when enabled), then data topics. Every message is
// retained per configuration and acknowledged individually; the first
// failed acknowledgment aborts the sequence.
func (p *publisher) PublishWeather(ctx context.Context, data *weathersvc.WeatherSnapshot) error {
	var err error

	ctx, span := tracer.Start(ctx, "publish-weather")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	messages := make([]message, 0, 64)

	if p.cfg.HADiscovery {
		messages = append(messages, p.discoveryMessages(data)...)
	}

	var dataMessages []message
	dataMessages, err = p.dataMessages(data)
	if err != nil {
		return err
	}
	messages = append(messages, dataMessages...)

	for _, m := range messages {
		err = p.publish(m.topic, m.payload, m.retain)
		if err != nil {
			return err
		}
	}

	log.Info("published weather data",
		"messages", len(messages),
		"forecast_days", len(data.Forecast),
		"hourly_entries", len(data.HourlyToday),
		"has_current", data.Current != nil,
	)

	return nil
}

func (p *publisher) dataMessages(data *weathersvc.WeatherSnapshot) ([]message, error) {
	messages := make([]message, 0, 32)
	prefix := p.cfg.TopicPrefix

	if data.Current != nil {
		for _, s := range currentScalars(data.Current) {
			if s.value == nil {
				continue
			}
			messages = append(messages, message{
				topic:   prefix + "/" + s.name,
				payload: []byte(*s.value),
				retain:  p.cfg.Retain,
			})
		}
	}

	if data.RawCurrent != nil {
		payload, err := json.Marshal(data.RawCurrent)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal current conditions: %w", err)
		}
		messages = append(messages, message{prefix + "/current", payload, p.cfg.Retain})
	}

	forecastPayload, err := json.Marshal(data.Forecast)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal forecast: %w", err)
	}
	messages = append(messages, message{prefix + "/forecast", forecastPayload, p.cfg.Retain})

	for _, hour := range data.HourlyToday {
		base := fmt.Sprintf("%s/hourly/%02d", prefix, hour.Hour)

		if hour.Temperature != nil {
			messages = append(messages, message{base + "/temperature", []byte(formatFloat(*hour.Temperature)), p.cfg.Retain})
		}

		messages = append(messages, message{base + "/condition", []byte(haCondition(hour.IconCode)), p.cfg.Retain})

		precipitation := 0.0
		if hour.QPF != nil {
			precipitation = *hour.QPF
		}
		messages = append(messages, message{base + "/precipitation", []byte(formatFloat(precipitation)), p.cfg.Retain})
	}

	statePayload, err := json.Marshal(buildHAState(data))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ha state: %w", err)
	}
	messages = append(messages, message{prefix + "/ha_state", statePayload, p.cfg.Retain})

	return messages, nil
}

type haForecastEntry struct {
	Datetime                 string   `json:"datetime"`
	Temperature              *float64 `json:"temperature"`
	Templow                  *float64 `json:"templow"`
	Condition                string   `json:"condition"`
	PrecipitationProbability *int     `json:"precipitation_probability"`
	Precipitation            *float64 `json:"precipitation"`
	WindSpeed                *float64 `json:"wind_speed"`
	WindBearing              *string  `json:"wind_bearing"`
	Humidity                 *int     `json:"humidity"`
}

// buildHAState shapes the aggregate state payload that backs a single HA
// weather entity. Scalar fields only appear when current conditions are
// known; the forecast list is always present.
func buildHAState(data *weathersvc.WeatherSnapshot) map[string]any {
	state := map[string]any{}

	if c := data.Current; c != nil {
		state["temperature"] = c.Temperature
		state["humidity"] = c.Humidity
		state["wind_speed"] = c.WindSpeed
		state["wind_bearing"] = c.WindDirection
		state["pressure"] = c.Pressure
		state["visibility"] = c.Visibility
		state["condition"] = haCondition(c.IconCode)
	}

	entries := make([]haForecastEntry, 0, len(data.Forecast))
	for _, day := range data.Forecast {
		entries = append(entries, haForecastEntry{
			Datetime:                 day.Date,
			Temperature:              day.TempMax,
			Templow:                  day.TempMin,
			Condition:                haCondition(day.IconCodeDay),
			PrecipitationProbability: day.PrecipChanceDay,
			Precipitation:            day.QPF,
			WindSpeed:                day.WindSpeedDay,
			WindBearing:              day.WindDirectionDay,
			Humidity:                 day.HumidityDay,
		})
	}
	state["forecast"] = entries

	return state
}

type scalar struct {
	name  string
	value *string
}

// currentScalars flattens current conditions into per-metric values in a
// fixed order, one bare string per present field.
func currentScalars(c *weathersvc.CurrentConditions) []scalar {
	return []scalar{
		{"temperature", floatValue(c.Temperature)},
		{"feels_like", floatValue(c.FeelsLike)},
		{"humidity", intValue(c.Humidity)},
		{"wind_speed", floatValue(c.WindSpeed)},
		{"wind_direction", c.WindDirection},
		{"uv_index", intValue(c.UVIndex)},
		{"condition", c.Condition},
		{"icon_code", intValue(c.IconCode)},
		{"pressure", floatValue(c.Pressure)},
		{"visibility", floatValue(c.Visibility)},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func floatValue(v *float64) *string {
	if v == nil {
		return nil
	}
	s := formatFloat(*v)
	return &s
}

func intValue(v *int) *string {
	if v == nil {
		return nil
	}
	s := strconv.Itoa(*v)
	return &s
}
