package service

import (
	"context"

	"github.com/damon-houk/hnb-exchange/internal/domain/entity"
)

// ExchangeRateAPI defines the interface for querying the HNB exchange rate list
type ExchangeRateAPI interface {
	// FetchRates retrieves every bulletin line that matches the query, in upstream order
	FetchRates(ctx context.Context, query entity.DateRangeQuery) ([]entity.ExchangeRate, error)
}
