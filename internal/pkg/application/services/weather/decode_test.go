package weathersvc

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
)

func TestDecodeForecastPairsDaypartsPositionally(t *testing.T) {
	is := is.New(t)

	data := forecastResponse{}
	err := json.Unmarshal([]byte(forecastResponseJSON), &data)
	is.NoErr(err)

	result := decodeForecast(data)
	is.Equal(len(result), 2)

	is.Equal(result[0].DayOfWeek, "Monday")
	is.Equal(result[0].Date, "2026-02-03")
	is.Equal(*result[0].TempMax, 14.0)
	is.Equal(*result[0].TempMin, 6.0)
	is.Equal(result[0].Narrative, "Partly cloudy with rain in the afternoon.")
	is.Equal(*result[0].QPF, 1.5)

	// day i reads daypart indices 2i and 2i+1
	is.Equal(*result[0].IconCodeDay, 30)
	is.Equal(*result[0].IconCodeNight, 27)
	is.Equal(*result[1].IconCodeDay, 12)
	is.Equal(*result[1].IconCodeNight, 11)

	is.Equal(*result[0].PrecipChanceDay, 40)
	is.Equal(*result[0].PrecipChanceNight, 20)
	is.Equal(*result[0].ConditionDay, "Afternoon showers")
	is.Equal(*result[0].WindDirectionDay, "SSW")
	is.Equal(*result[0].WindDirectionNight, "S")
	is.Equal(*result[0].UVIndexDay, 2)
}

func TestDecodeForecastWithNullDaypartElements(t *testing.T) {
	is := is.New(t)

	// after sunset the API nulls out the daytime entries of the first day
	data := forecastResponse{}
	err := json.Unmarshal([]byte(`{
		"dayOfWeek": ["Monday", "Tuesday"],
		"validTimeLocal": ["2026-02-03T07:00:00+0100", "2026-02-04T07:00:00+0100"],
		"daypart": [{"iconCode": [null, 27, 12, 11]}]
	}`), &data)
	is.NoErr(err)

	result := decodeForecast(data)
	is.Equal(len(result), 2)
	is.Equal(result[0].IconCodeDay, (*int)(nil))
	is.Equal(*result[0].IconCodeNight, 27)
	is.Equal(*result[1].IconCodeDay, 12)
}

func TestDecodeForecastEmptyDayOfWeek(t *testing.T) {
	is := is.New(t)

	result := decodeForecast(forecastResponse{DayOfWeek: []string{}})
	is.Equal(len(result), 0)
}

func TestDecodeForecastWithoutDaypart(t *testing.T) {
	is := is.New(t)

	data := forecastResponse{}
	err := json.Unmarshal([]byte(`{
		"dayOfWeek": ["Monday"],
		"validTimeLocal": ["2026-02-03T07:00:00+0100"],
		"calendarDayTemperatureMax": [12],
		"calendarDayTemperatureMin": [5],
		"narrative": ["Partly cloudy."],
		"qpf": [0.0]
	}`), &data)
	is.NoErr(err)

	result := decodeForecast(data)
	is.Equal(len(result), 1)
	is.Equal(*result[0].TempMax, 12.0)
	is.Equal(*result[0].TempMin, 5.0)
	is.Equal(result[0].Narrative, "Partly cloudy.")
	is.Equal(result[0].PrecipChanceDay, (*int)(nil))
	is.Equal(result[0].IconCodeDay, (*int)(nil))
	is.Equal(result[0].WindSpeedNight, (*float64)(nil))
}

func TestDecodeForecastShortArraysDegradeToAbsent(t *testing.T) {
	is := is.New(t)

	data := forecastResponse{}
	err := json.Unmarshal([]byte(`{
		"dayOfWeek": ["Monday", "Tuesday"],
		"validTimeLocal": ["2026-02-03T07:00:00+0100"],
		"calendarDayTemperatureMax": [14],
		"qpf": [1.5],
		"daypart": [{"iconCode": [30]}]
	}`), &data)
	is.NoErr(err)

	result := decodeForecast(data)
	is.Equal(len(result), 2)

	is.Equal(result[1].Date, "")
	is.Equal(result[1].TempMax, (*float64)(nil))
	is.Equal(result[1].QPF, (*float64)(nil))

	is.Equal(*result[0].IconCodeDay, 30)
	is.Equal(result[0].IconCodeNight, (*int)(nil))
}

func TestDecodeHourlyKeepsFirstCalendarDayOnly(t *testing.T) {
	is := is.New(t)

	data := hourlyResponse{}
	err := json.Unmarshal([]byte(`{
		"validTimeLocal": [
			"2026-02-03T22:00:00+0100",
			"2026-02-03T23:00:00+0100",
			"2026-02-04T00:00:00+0100",
			"2026-02-04T01:00:00+0100"
		],
		"temperature": [8.0, 7.5, 7.0, 6.5],
		"wxPhraseLong": ["Clear", "Clear", "Cloudy", "Cloudy"],
		"iconCode": [31, 31, 26, 26],
		"qpf": [0.0, 0.0, 0.2, 0.4]
	}`), &data)
	is.NoErr(err)

	result := decodeHourly(data)
	is.Equal(len(result), 2)
	is.Equal(result[0].Hour, 22)
	is.Equal(result[1].Hour, 23)
	is.Equal(*result[0].Temperature, 8.0)
	is.Equal(*result[1].QPF, 0.0)
	is.Equal(*result[0].IconCode, 31)
	is.Equal(result[0].TimeLocal, "2026-02-03T22:00:00+0100")
}

func TestDecodeHourlyEmptyResponse(t *testing.T) {
	is := is.New(t)

	result := decodeHourly(hourlyResponse{})
	is.Equal(len(result), 0)
}

func TestDecodeHourlyShortValueArrays(t *testing.T) {
	is := is.New(t)

	data := hourlyResponse{
		ValidTimeLocal: []string{"2026-02-03T07:00:00+0100", "2026-02-03T08:00:00+0100"},
		Temperature:    []*float64{},
	}

	result := decodeHourly(data)
	is.Equal(len(result), 2)
	is.Equal(result[0].Hour, 7)
	is.Equal(result[1].Hour, 8)
	is.Equal(result[0].Temperature, (*float64)(nil))
	is.Equal(result[0].Condition, (*string)(nil))
}

func TestDecodeCurrentConditions(t *testing.T) {
	is := is.New(t)

	data := currentResponse{}
	err := json.Unmarshal([]byte(currentResponseJSON), &data)
	is.NoErr(err)

	result := decodeCurrentConditions(data)
	is.Equal(*result.Temperature, 12.0)
	is.Equal(*result.FeelsLike, 10.0)
	is.Equal(*result.Humidity, 75)
	is.Equal(*result.WindSpeed, 15.0)
	is.Equal(*result.WindDirection, "SSW")
	is.Equal(*result.UVIndex, 2)
	is.Equal(*result.Condition, "Partiellement nuageux")
	is.Equal(*result.IconCode, 30)
	is.Equal(*result.Pressure, 1013.0)
	is.Equal(*result.Visibility, 10.0)
}

func TestDecodeCurrentConditionsMissingFields(t *testing.T) {
	is := is.New(t)

	data := currentResponse{}
	err := json.Unmarshal([]byte(`{"temperature": 12.0}`), &data)
	is.NoErr(err)

	result := decodeCurrentConditions(data)
	is.Equal(*result.Temperature, 12.0)
	is.Equal(result.Humidity, (*int)(nil))
	is.Equal(result.Condition, (*string)(nil))
	is.Equal(result.IconCode, (*int)(nil))
}

const forecastResponseJSON string = `{
	"dayOfWeek": ["Monday", "Tuesday"],
	"validTimeLocal": ["2026-02-03T07:00:00+0100", "2026-02-04T07:00:00+0100"],
	"calendarDayTemperatureMax": [14.0, 11.0],
	"calendarDayTemperatureMin": [6.0, 3.0],
	"narrative": ["Partly cloudy with rain in the afternoon.", "Rain showers."],
	"qpf": [1.5, 4.2],
	"daypart": [{
		"precipChance": [40, 20, 80, 60],
		"wxPhraseLong": ["Afternoon showers", "Mostly cloudy", "Rain", "Showers"],
		"iconCode": [30, 27, 12, 11],
		"relativeHumidity": [70, 85, 90, 88],
		"windSpeed": [20.0, 10.0, 25.0, 15.0],
		"windDirectionCardinal": ["SSW", "S", "W", "WNW"],
		"uvIndex": [2, 0, 1, 0]
	}]
}`

const currentResponseJSON string = `{
	"temperature": 12.0,
	"temperatureFeelsLike": 10.0,
	"relativeHumidity": 75,
	"windSpeed": 15.0,
	"windDirectionCardinal": "SSW",
	"uvIndex": 2,
	"wxPhraseLong": "Partiellement nuageux",
	"iconCode": 30,
	"pressureAltimeter": 1013.0,
	"visibility": 10.0
}`
