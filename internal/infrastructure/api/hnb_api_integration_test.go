// internal/infrastructure/api/hnb_api_integration_test.go
package api

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/damon-houk/hnb-exchange/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHNBAPIIntegration(t *testing.T) {
	// This test makes actual API calls - skip in short mode and unless explicitly enabled
	if testing.Short() || os.Getenv("HNB_INTEGRATION") == "" {
		t.Skip("Skipping HNB API integration test; set HNB_INTEGRATION=1 to run it")
	}

	client := NewHNBAPIClient("", nil, nil)

	// A settled week well in the past always has bulletins
	query := entity.DateRangeQuery{
		Currency:  "USD",
		StartDate: time.Date(2020, 8, 17, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2020, 8, 21, 0, 0, 0, 0, time.UTC),
		Mode:      entity.ExplicitRange{},
	}

	rates, err := client.FetchRates(context.Background(), query)
	require.NoError(t, err)
	require.NotEmpty(t, rates)

	for _, rate := range rates {
		assert.Equal(t, "USD", rate.Currency)
		assert.Greater(t, rate.MiddleRate, 0.0)
		assert.False(t, rate.ExchangeDate.Before(query.StartDate))
		assert.False(t, rate.ExchangeDate.After(query.EndDate))

		t.Logf("Bulletin %s on %s: %s middle rate %f",
			rate.ExchangeNumber, rate.ExchangeDate.Format(entity.DateLayout), rate.Currency, rate.MiddleRate)
	}
}
