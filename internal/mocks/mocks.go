// internal/mocks/mocks.go
package mocks

import (
	"context"

	"github.com/damon-houk/hnb-exchange/internal/domain/entity"
	"github.com/damon-houk/hnb-exchange/internal/infrastructure/logger"
	"github.com/stretchr/testify/mock"
)

// MockExchangeRateAPI mocks the ExchangeRateAPI interface
type MockExchangeRateAPI struct {
	mock.Mock
}

func (m *MockExchangeRateAPI) FetchRates(ctx context.Context, query entity.DateRangeQuery) ([]entity.ExchangeRate, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ExchangeRate), args.Error(1)
}

// MockLogger mocks the logger interface
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Info(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Error(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Fatal(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) WithField(key string, value interface{}) logger.Logger {
	args := m.Called(key, value)
	return args.Get(0).(logger.Logger)
}

func (m *MockLogger) WithFields(fields map[string]interface{}) logger.Logger {
	args := m.Called(fields)
	return args.Get(0).(logger.Logger)
}
