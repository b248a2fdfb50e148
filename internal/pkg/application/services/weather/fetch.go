package weathersvc

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// get performs one GET against the weather API. A non-2xx status is an
// error; whether that error is fatal is up to the caller's endpoint policy.
func (ws *weatherSvc) get(ctx context.Context, path string) ([]byte, error) {
	if err := ws.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	apiReq, err := http.NewRequestWithContext(ctx, http.MethodGet, ws.endpointURL(path), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}

	apiResponse, err := httpClient.Do(apiReq)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve %s: %w", path, err)
	}
	defer apiResponse.Body.Close()

	if apiResponse.StatusCode < http.StatusOK || apiResponse.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("expected a 2xx status code for %s, but got %d", path, apiResponse.StatusCode)
	}

	responseBody, err := io.ReadAll(apiResponse.Body)

	logging.GetFromContext(ctx).Debug("received response", "path", path, "size", len(responseBody))

	return responseBody, err
}
