package weathersvc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

// getDailyForecast fetches and decodes the 5 day forecast. Errors here are
// fatal to the run. The verbatim response body is returned alongside the
// decoded days so the snapshot can keep it.
func (ws *weatherSvc) getDailyForecast(ctx context.Context) ([]DayForecast, []byte, error) {
	var err error

	ctx, span := tracer.Start(ctx, "get-daily-forecast")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	responseBody, err := ws.get(ctx, forecastPath)
	if err != nil {
		return nil, nil, err
	}

	data := forecastResponse{}
	err = json.Unmarshal(responseBody, &data)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal daily forecast: %w", err)
		return nil, nil, err
	}

	return decodeForecast(data), responseBody, nil
}
