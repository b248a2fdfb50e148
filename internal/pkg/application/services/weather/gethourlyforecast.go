package weathersvc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

// getHourlyForecast fetches and decodes the hourly forecast, keeping only
// the hours of the first calendar day in the response. Hourly data is best
// effort; the caller degrades any error to an empty sequence.
func (ws *weatherSvc) getHourlyForecast(ctx context.Context) ([]HourForecast, error) {
	var err error

	ctx, span := tracer.Start(ctx, "get-hourly-forecast")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	responseBody, err := ws.get(ctx, hourlyPath)
	if err != nil {
		return nil, err
	}

	data := hourlyResponse{}
	err = json.Unmarshal(responseBody, &data)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal hourly forecast: %w", err)
		return nil, err
	}

	return decodeHourly(data), nil
}
