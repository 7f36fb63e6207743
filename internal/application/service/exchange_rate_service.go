// Package service internal/application/service/exchange_rate_service.go
package service

import (
	"context"
	stderrors "errors"

	"github.com/damon-houk/hnb-exchange/internal/domain/entity"
	domainservice "github.com/damon-houk/hnb-exchange/internal/domain/service"
	"github.com/damon-houk/hnb-exchange/internal/infrastructure/logger"
	"github.com/damon-houk/hnb-exchange/internal/infrastructure/metrics"
	"github.com/damon-houk/hnb-exchange/internal/infrastructure/middleware"
	"github.com/pkg/errors"
)

// Pipeline stages reported when a run fails
const (
	StageInvalidArguments = "invalid arguments"
	StageTransport        = "transport"
	StageUpstreamStatus   = "upstream status"
	StageDecode           = "decode"
	StageUnknown          = "unknown"
)

// FailureStage names the pipeline stage an error came from
func FailureStage(err error) string {
	switch {
	case stderrors.Is(err, entity.ErrInvalidArgument):
		return StageInvalidArguments
	case stderrors.Is(err, entity.ErrTransport):
		return StageTransport
	case stderrors.Is(err, entity.ErrHTTPStatus):
		return StageUpstreamStatus
	case stderrors.Is(err, entity.ErrDecode):
		return StageDecode
	default:
		return StageUnknown
	}
}

// ExchangeRateService resolves the requested range and fetches its rates
type ExchangeRateService struct {
	resolver *DateRangeResolver
	api      domainservice.ExchangeRateAPI
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewExchangeRateService creates a new exchange rate service
func NewExchangeRateService(resolver *DateRangeResolver, api domainservice.ExchangeRateAPI, m *metrics.Metrics, log logger.Logger) *ExchangeRateService {
	if resolver == nil {
		resolver = NewDateRangeResolver(nil)
	}
	if m == nil {
		m = metrics.NewMetrics()
	}
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ExchangeRateService{
		resolver: resolver,
		api:      api,
		metrics:  m,
		logger:   log,
	}
}

// ResolveQuery validates the command line values. It never touches the network.
func (s *ExchangeRateService) ResolveQuery(ctx context.Context, args RangeArgs) (entity.DateRangeQuery, error) {
	const op = "service.ResolveQuery"

	query, err := s.resolver.Resolve(args)
	if err != nil {
		s.fail(ctx, err)
		return entity.DateRangeQuery{}, errors.Wrap(err, op)
	}

	s.logger.Debug("Resolved date range", map[string]interface{}{
		"request_id": middleware.GetRequestID(ctx),
		"currency":   query.Currency,
		"start_date": query.StartParam(),
		"end_date":   query.EndParam(),
	})

	return query, nil
}

// FetchRates retrieves the rates for a resolved query, keeping the upstream order
func (s *ExchangeRateService) FetchRates(ctx context.Context, query entity.DateRangeQuery) ([]entity.ExchangeRate, error) {
	const op = "service.FetchRates"

	requestID := middleware.GetRequestID(ctx)

	s.logger.Info("Fetching exchange rates", map[string]interface{}{
		"request_id": requestID,
		"currency":   query.Currency,
		"start_date": query.StartParam(),
		"end_date":   query.EndParam(),
	})

	rates, err := s.api.FetchRates(ctx, query)
	if err != nil {
		s.fail(ctx, err)
		return nil, errors.Wrap(err, op)
	}

	s.metrics.RatesDecoded.Set(float64(len(rates)))

	s.logger.Info("Exchange rates fetched", map[string]interface{}{
		"request_id": requestID,
		"count":      len(rates),
	})

	return rates, nil
}

func (s *ExchangeRateService) fail(ctx context.Context, err error) {
	stage := FailureStage(err)
	s.metrics.RunFailuresTotal.WithLabelValues(stage).Inc()

	s.logger.Error("Run failed", map[string]interface{}{
		"request_id": middleware.GetRequestID(ctx),
		"stage":      stage,
		"error":      err.Error(),
	})
}
