package weathersvc

import "strconv"

// valueAt is the one place where positional access into the loosely sized
// upstream arrays happens. Out of bounds (or a null element) yields nil.
func valueAt[T any](arr []*T, idx int) *T {
	if idx < 0 || idx >= len(arr) {
		return nil
	}
	return arr[idx]
}

func stringAt(arr []string, idx int) string {
	if idx < 0 || idx >= len(arr) {
		return ""
	}
	return arr[idx]
}

func decodeCurrentConditions(data currentResponse) *CurrentConditions {
	return &CurrentConditions{
		Temperature:   data.Temperature,
		FeelsLike:     data.TemperatureFeelsLike,
		Humidity:      data.RelativeHumidity,
		WindSpeed:     data.WindSpeed,
		WindDirection: data.WindDirectionCardinal,
		UVIndex:       data.UVIndex,
		Condition:     data.WxPhraseLong,
		IconCode:      data.IconCode,
		Pressure:      data.PressureAltimeter,
		Visibility:    data.Visibility,
	}
}

// decodeForecast correlates the parallel arrays of the daily forecast
// response into per-day records. Day i takes its daypart values from
// indices 2i (day) and 2i+1 (night); anything the response does not carry
// decodes to nil rather than failing.
func decodeForecast(data forecastResponse) []DayForecast {
	var dp daypart
	if len(data.Daypart) > 0 {
		dp = data.Daypart[0]
	}

	forecasts := make([]DayForecast, 0, len(data.DayOfWeek))

	for i := range data.DayOfWeek {
		dayIdx := i * 2
		nightIdx := i*2 + 1

		date := stringAt(data.ValidTimeLocal, i)
		if len(date) > 10 {
			date = date[:10]
		}

		forecasts = append(forecasts, DayForecast{
			DayOfWeek:          data.DayOfWeek[i],
			Date:               date,
			TempMax:            valueAt(data.CalendarDayTemperatureMax, i),
			TempMin:            valueAt(data.CalendarDayTemperatureMin, i),
			Narrative:          stringAt(data.Narrative, i),
			PrecipChanceDay:    valueAt(dp.PrecipChance, dayIdx),
			PrecipChanceNight:  valueAt(dp.PrecipChance, nightIdx),
			ConditionDay:       valueAt(dp.WxPhraseLong, dayIdx),
			ConditionNight:     valueAt(dp.WxPhraseLong, nightIdx),
			IconCodeDay:        valueAt(dp.IconCode, dayIdx),
			IconCodeNight:      valueAt(dp.IconCode, nightIdx),
			HumidityDay:        valueAt(dp.RelativeHumidity, dayIdx),
			HumidityNight:      valueAt(dp.RelativeHumidity, nightIdx),
			WindSpeedDay:       valueAt(dp.WindSpeed, dayIdx),
			WindSpeedNight:     valueAt(dp.WindSpeed, nightIdx),
			WindDirectionDay:   valueAt(dp.WindDirectionCardinal, dayIdx),
			WindDirectionNight: valueAt(dp.WindDirectionCardinal, nightIdx),
			QPF:                valueAt(data.QPF, i),
			UVIndexDay:         valueAt(dp.UVIndex, dayIdx),
		})
	}

	return forecasts
}

// decodeHourly keeps the hours whose date component matches the date of the
// first entry. Whatever day that first entry belongs to is "today", wall
// clock notwithstanding.
func decodeHourly(data hourlyResponse) []HourForecast {
	if len(data.ValidTimeLocal) == 0 {
		return []HourForecast{}
	}

	today := data.ValidTimeLocal[0]
	if len(today) > 10 {
		today = today[:10]
	}

	hours := make([]HourForecast, 0, 24)

	for i, ts := range data.ValidTimeLocal {
		if len(ts) < 13 || ts[:10] != today {
			continue
		}

		hour, err := strconv.Atoi(ts[11:13])
		if err != nil {
			continue
		}

		hours = append(hours, HourForecast{
			TimeLocal:   ts,
			Hour:        hour,
			Temperature: valueAt(data.Temperature, i),
			Condition:   valueAt(data.WxPhraseLong, i),
			IconCode:    valueAt(data.IconCode, i),
			QPF:         valueAt(data.QPF, i),
		})
	}

	return hours
}
