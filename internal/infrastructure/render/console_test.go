package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/damon-houk/hnb-exchange/internal/domain/entity"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	renderer := NewConsoleRenderer(&buf)

	query := entity.DateRangeQuery{
		Currency:  "AUD",
		StartDate: time.Date(2020, 8, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2020, 8, 26, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, renderer.RenderHeader(query))

	rates := []entity.ExchangeRate{
		{ExchangeNumber: "161", ExchangeDate: time.Date(2020, 8, 21, 0, 0, 0, 0, time.UTC), Currency: "AUD", Unit: 1, MiddleRate: 4.553552},
		{ExchangeNumber: "161", ExchangeDate: time.Date(2020, 8, 21, 0, 0, 0, 0, time.UTC), Currency: "JPY", Unit: 100, MiddleRate: 5.952075},
	}
	require.NoError(t, renderer.Render(rates))

	expected := "Getting rates for AUD from 2020-08-20 to 2020-08-26\n" +
		" 161 2020-08-21  AUD   1   4.5535520\n" +
		" 161 2020-08-21  JPY  100  5.9520750\n"
	assert.Equal(t, expected, buf.String())
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewConsoleRenderer(&buf).Render(nil))
	assert.Empty(t, buf.String())
}

func TestCenter(t *testing.T) {
	assert.Equal(t, " AUD ", center(" AUD ", 5))
	assert.Equal(t, " 1  ", center("1", 4))
	assert.Equal(t, " 10 ", center("10", 4))
	assert.Equal(t, "100 ", center("100", 4))
	assert.Equal(t, "10000", center("10000", 4))
}
