package codec

import (
	"errors"
	"testing"
	"time"

	"github.com/damon-houk/hnb-exchange/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const audRate = `{
	"broj_tecajnice": "161",
	"datum_primjene": "2020-08-21",
	"drzava": "Australija",
	"drzava_iso": "AUS",
	"sifra_valute": "036",
	"valuta": "AUD",
	"jedinica": 1,
	"kupovni_tecaj": "4,539891",
	"srednji_tecaj": "4,553552",
	"prodajni_tecaj": "4,567213"
}`

const jpyRate = `{
	"broj_tecajnice": "161",
	"datum_primjene": "2020-08-21",
	"drzava": "Japan",
	"drzava_iso": "JPN",
	"sifra_valute": "392",
	"valuta": "JPY",
	"jedinica": 100,
	"kupovni_tecaj": "5,934218",
	"srednji_tecaj": "5,952075",
	"prodajni_tecaj": "5,969932"
}`

func TestDecodeRate(t *testing.T) {
	rate, err := DecodeRate([]byte(audRate))
	require.NoError(t, err)

	assert.Equal(t, "161", rate.ExchangeNumber)
	assert.Equal(t, time.Date(2020, 8, 21, 0, 0, 0, 0, time.UTC), rate.ExchangeDate)
	assert.Equal(t, "Australija", rate.Country)
	assert.Equal(t, "AUS", rate.CountryISO)
	assert.Equal(t, "036", rate.CurrencyCode)
	assert.Equal(t, "AUD", rate.Currency)
	assert.Equal(t, uint32(1), rate.Unit)
	assert.Equal(t, 4.539891, rate.BuyingRate)
	assert.Equal(t, 4.553552, rate.MiddleRate)
	assert.Equal(t, 4.567213, rate.SellingRate)
}

func TestDecodeRates(t *testing.T) {
	t.Run("Order is preserved", func(t *testing.T) {
		rates, err := DecodeRates([]byte("[" + jpyRate + "," + audRate + "]"))
		require.NoError(t, err)
		require.Len(t, rates, 2)

		assert.Equal(t, "JPY", rates[0].Currency)
		assert.Equal(t, uint32(100), rates[0].Unit)
		assert.Equal(t, "AUD", rates[1].Currency)
	})

	t.Run("Empty list", func(t *testing.T) {
		rates, err := DecodeRates([]byte("[]"))
		require.NoError(t, err)
		assert.Empty(t, rates)
	})

	t.Run("Unknown fields are ignored", func(t *testing.T) {
		rates, err := DecodeRates([]byte(`[{"extra": true, ` + audRate[2:] + `]`))
		require.NoError(t, err)
		assert.Len(t, rates, 1)
	})
}

func TestDecodeRatesFailures(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected error
		index    int
		field    string
	}{
		{
			name:     "Malformed buying rate aborts the whole list",
			body:     `[` + jpyRate + `,{"broj_tecajnice":"161","datum_primjene":"2020-08-21","drzava":"Australija","drzava_iso":"AUS","sifra_valute":"036","valuta":"AUD","jedinica":1,"kupovni_tecaj":"abc","srednji_tecaj":"4,553552","prodajni_tecaj":"4,567213"}]`,
			expected: entity.ErrMalformedNumber,
			index:    1,
			field:    "kupovni_tecaj",
		},
		{
			name:     "Invalid calendar date",
			body:     `[{"broj_tecajnice":"161","datum_primjene":"2020-09-31","drzava":"Australija","drzava_iso":"AUS","sifra_valute":"036","valuta":"AUD","jedinica":1,"kupovni_tecaj":"4,539891","srednji_tecaj":"4,553552","prodajni_tecaj":"4,567213"}]`,
			expected: entity.ErrMalformedDate,
			index:    0,
			field:    "datum_primjene",
		},
		{
			name:     "Unit is not a number",
			body:     `[{"broj_tecajnice":"161","datum_primjene":"2020-08-21","drzava":"Australija","drzava_iso":"AUS","sifra_valute":"036","valuta":"AUD","jedinica":"1","kupovni_tecaj":"4,539891","srednji_tecaj":"4,553552","prodajni_tecaj":"4,567213"}]`,
			expected: entity.ErrSchemaMismatch,
			index:    0,
			field:    "jedinica",
		},
		{
			name:     "Missing field",
			body:     `[{"broj_tecajnice":"161","datum_primjene":"2020-08-21","drzava":"Australija","drzava_iso":"AUS","sifra_valute":"036","valuta":"AUD","jedinica":1,"kupovni_tecaj":"4,539891","prodajni_tecaj":"4,567213"}]`,
			expected: entity.ErrSchemaMismatch,
			index:    0,
			field:    "srednji_tecaj",
		},
		{
			name:     "Null field",
			body:     `[{"broj_tecajnice":null,"datum_primjene":"2020-08-21","drzava":"Australija","drzava_iso":"AUS","sifra_valute":"036","valuta":"AUD","jedinica":1,"kupovni_tecaj":"4,539891","srednji_tecaj":"4,553552","prodajni_tecaj":"4,567213"}]`,
			expected: entity.ErrSchemaMismatch,
			index:    0,
			field:    "broj_tecajnice",
		},
		{
			name:     "Rate sent as a JSON number",
			body:     `[{"broj_tecajnice":"161","datum_primjene":"2020-08-21","drzava":"Australija","drzava_iso":"AUS","sifra_valute":"036","valuta":"AUD","jedinica":1,"kupovni_tecaj":4.5,"srednji_tecaj":"4,553552","prodajni_tecaj":"4,567213"}]`,
			expected: entity.ErrSchemaMismatch,
			index:    0,
			field:    "kupovni_tecaj",
		},
		{
			name:     "Top level is an object",
			body:     audRate,
			expected: entity.ErrSchemaMismatch,
			index:    -1,
		},
		{
			name:     "Top level is null",
			body:     `null`,
			expected: entity.ErrSchemaMismatch,
			index:    -1,
		},
		{
			name:     "Element is not an object",
			body:     `[42]`,
			expected: entity.ErrSchemaMismatch,
			index:    0,
		},
		{
			name:     "Truncated body",
			body:     `[` + audRate,
			expected: entity.ErrDecode,
			index:    -1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rates, err := DecodeRates([]byte(tc.body))

			assert.Nil(t, rates)
			assert.ErrorIs(t, err, tc.expected)
			assert.ErrorIs(t, err, entity.ErrDecode)

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tc.index, fieldErr.Index)
			assert.Equal(t, tc.field, fieldErr.Field)
		})
	}
}

func TestFieldErrorMessage(t *testing.T) {
	_, err := DecodeRates([]byte(`[{"broj_tecajnice":"161","datum_primjene":"2020-08-21","drzava":"Australija","drzava_iso":"AUS","sifra_valute":"036","valuta":"AUD","jedinica":1,"kupovni_tecaj":"abc","srednji_tecaj":"4,553552","prodajni_tecaj":"4,567213"}]`))

	assert.EqualError(t, err, `record 0: field "kupovni_tecaj": decode error: malformed number: "abc"`)
}
