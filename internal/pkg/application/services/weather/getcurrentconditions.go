package weathersvc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

// getCurrentConditions fetches and decodes the current observation. The
// caller treats any error as a degradation, not a run failure.
func (ws *weatherSvc) getCurrentConditions(ctx context.Context) (*CurrentConditions, error) {
	var err error

	ctx, span := tracer.Start(ctx, "get-current-conditions")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	responseBody, err := ws.get(ctx, currentPath)
	if err != nil {
		return nil, err
	}

	data := currentResponse{}
	err = json.Unmarshal(responseBody, &data)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal current conditions: %w", err)
		return nil, err
	}

	return decodeCurrentConditions(data), nil
}
