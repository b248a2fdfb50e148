package weathersvc

import "encoding/json"

// CurrentConditions holds a single observation. Every field may be missing
// from the upstream response, hence the pointers.
type CurrentConditions struct {
	Temperature   *float64 `json:"temperature"`
	FeelsLike     *float64 `json:"feels_like"`
	Humidity      *int     `json:"humidity"`
	WindSpeed     *float64 `json:"wind_speed"`
	WindDirection *string  `json:"wind_direction"`
	UVIndex       *int     `json:"uv_index"`
	Condition     *string  `json:"condition"`
	IconCode      *int     `json:"icon_code"`
	Pressure      *float64 `json:"pressure"`
	Visibility    *float64 `json:"visibility"`
}

// DayForecast is one day of the daily forecast. The _day/_night pairs come
// from the daypart arrays, where day i sits at index 2i and 2i+1.
type DayForecast struct {
	DayOfWeek          string   `json:"day_of_week"`
	Date               string   `json:"date"`
	TempMax            *float64 `json:"temp_max"`
	TempMin            *float64 `json:"temp_min"`
	Narrative          string   `json:"narrative"`
	PrecipChanceDay    *int     `json:"precip_chance_day"`
	PrecipChanceNight  *int     `json:"precip_chance_night"`
	ConditionDay       *string  `json:"condition_day"`
	ConditionNight     *string  `json:"condition_night"`
	IconCodeDay        *int     `json:"icon_code_day"`
	IconCodeNight      *int     `json:"icon_code_night"`
	HumidityDay        *int     `json:"humidity_day"`
	HumidityNight      *int     `json:"humidity_night"`
	WindSpeedDay       *float64 `json:"wind_speed_day"`
	WindSpeedNight     *float64 `json:"wind_speed_night"`
	WindDirectionDay   *string  `json:"wind_direction_day"`
	WindDirectionNight *string  `json:"wind_direction_night"`
	QPF                *float64 `json:"qpf"`
	UVIndexDay         *int     `json:"uv_index_day"`
}

// HourForecast is one hour of the hourly forecast, limited to the calendar
// day of the first entry in the upstream response.
type HourForecast struct {
	TimeLocal   string   `json:"time_local"`
	Hour        int      `json:"hour"`
	Temperature *float64 `json:"temperature"`
	Condition   *string  `json:"condition"`
	IconCode    *int     `json:"icon_code"`
	QPF         *float64 `json:"qpf"`
}

// WeatherSnapshot is the immutable result of one fetch run. RawCurrent is a
// flattened view of Current using the same field names, kept for the
// pass-through current topic. RawForecast is the forecast response verbatim.
type WeatherSnapshot struct {
	Current     *CurrentConditions
	Forecast    []DayForecast
	HourlyToday []HourForecast
	RawCurrent  map[string]any
	RawForecast json.RawMessage
}

type currentResponse struct {
	Temperature           *float64 `json:"temperature"`
	TemperatureFeelsLike  *float64 `json:"temperatureFeelsLike"`
	RelativeHumidity      *int     `json:"relativeHumidity"`
	WindSpeed             *float64 `json:"windSpeed"`
	WindDirectionCardinal *string  `json:"windDirectionCardinal"`
	UVIndex               *int     `json:"uvIndex"`
	WxPhraseLong          *string  `json:"wxPhraseLong"`
	IconCode              *int     `json:"iconCode"`
	PressureAltimeter     *float64 `json:"pressureAltimeter"`
	Visibility            *float64 `json:"visibility"`
}

// forecastResponse mirrors the parallel-array layout of the daily forecast
// endpoint. Array elements can be null, so anything nullable is a pointer.
type forecastResponse struct {
	DayOfWeek                 []string   `json:"dayOfWeek"`
	ValidTimeLocal            []string   `json:"validTimeLocal"`
	CalendarDayTemperatureMax []*float64 `json:"calendarDayTemperatureMax"`
	CalendarDayTemperatureMin []*float64 `json:"calendarDayTemperatureMin"`
	Narrative                 []string   `json:"narrative"`
	QPF                       []*float64 `json:"qpf"`
	Daypart                   []daypart  `json:"daypart"`
}

type daypart struct {
	PrecipChance          []*int     `json:"precipChance"`
	WxPhraseLong          []*string  `json:"wxPhraseLong"`
	IconCode              []*int     `json:"iconCode"`
	RelativeHumidity      []*int     `json:"relativeHumidity"`
	WindSpeed             []*float64 `json:"windSpeed"`
	WindDirectionCardinal []*string  `json:"windDirectionCardinal"`
	UVIndex               []*int     `json:"uvIndex"`
}

type hourlyResponse struct {
	ValidTimeLocal []string   `json:"validTimeLocal"`
	Temperature    []*float64 `json:"temperature"`
	WxPhraseLong   []*string  `json:"wxPhraseLong"`
	IconCode       []*int     `json:"iconCode"`
	QPF            []*float64 `json:"qpf"`
}
