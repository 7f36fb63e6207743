package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/damon-houk/hnb-exchange/internal/domain/entity"
)

// FieldError describes why one element of the rate list could not be decoded
type FieldError struct {
	// Index is the position in the response array, or -1 when the error is not tied to a record
	Index  int
	Field  string
	Detail string
	Err    error
}

func (e *FieldError) Error() string {
	var b strings.Builder
	if e.Index >= 0 {
		fmt.Fprintf(&b, "record %d: ", e.Index)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, "field %q: ", e.Field)
	}
	b.WriteString(e.Err.Error())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// rateDTO is one element of the HNB tecajn/v2 response. Pointers tell a missing
// or null field apart from an empty one.
type rateDTO struct {
	ExchangeNumber *string `json:"broj_tecajnice"`
	ExchangeDate   *string `json:"datum_primjene"`
	Country        *string `json:"drzava"`
	CountryISO     *string `json:"drzava_iso"`
	CurrencyCode   *string `json:"sifra_valute"`
	Currency       *string `json:"valuta"`
	Unit           *uint32 `json:"jedinica"`
	BuyingRate     *string `json:"kupovni_tecaj"`
	MiddleRate     *string `json:"srednji_tecaj"`
	SellingRate    *string `json:"prodajni_tecaj"`
}

func (d *rateDTO) missingField() string {
	switch {
	case d.ExchangeNumber == nil:
		return "broj_tecajnice"
	case d.ExchangeDate == nil:
		return "datum_primjene"
	case d.Country == nil:
		return "drzava"
	case d.CountryISO == nil:
		return "drzava_iso"
	case d.CurrencyCode == nil:
		return "sifra_valute"
	case d.Currency == nil:
		return "valuta"
	case d.Unit == nil:
		return "jedinica"
	case d.BuyingRate == nil:
		return "kupovni_tecaj"
	case d.MiddleRate == nil:
		return "srednji_tecaj"
	case d.SellingRate == nil:
		return "prodajni_tecaj"
	}
	return ""
}

// DecodeRates decodes a whole response body. Any bad element fails the entire
// decode and no records are returned.
func DecodeRates(data []byte) ([]entity.ExchangeRate, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &FieldError{Index: -1, Err: entity.ErrSchemaMismatch, Detail: "expected a JSON array, got " + typeErr.Value}
		}
		return nil, &FieldError{Index: -1, Err: entity.ErrDecode, Detail: err.Error()}
	}
	if elements == nil {
		return nil, &FieldError{Index: -1, Err: entity.ErrSchemaMismatch, Detail: "expected a JSON array, got null"}
	}

	rates := make([]entity.ExchangeRate, 0, len(elements))
	for i, element := range elements {
		rate, fieldErr := decodeRate(element)
		if fieldErr != nil {
			fieldErr.Index = i
			return nil, fieldErr
		}
		rates = append(rates, rate)
	}

	return rates, nil
}

// DecodeRate decodes a single rate object
func DecodeRate(data []byte) (entity.ExchangeRate, error) {
	rate, fieldErr := decodeRate(data)
	if fieldErr != nil {
		return entity.ExchangeRate{}, fieldErr
	}
	return rate, nil
}

func decodeRate(data []byte) (entity.ExchangeRate, *FieldError) {
	var dto rateDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return entity.ExchangeRate{}, &FieldError{
				Index:  -1,
				Field:  typeErr.Field,
				Err:    entity.ErrSchemaMismatch,
				Detail: fmt.Sprintf("expected %s, got JSON %s", typeErr.Type, typeErr.Value),
			}
		}
		return entity.ExchangeRate{}, &FieldError{Index: -1, Err: entity.ErrDecode, Detail: err.Error()}
	}

	if field := dto.missingField(); field != "" {
		return entity.ExchangeRate{}, &FieldError{Index: -1, Field: field, Err: entity.ErrSchemaMismatch, Detail: "missing or null"}
	}

	exchangeDate, err := ParseDate(*dto.ExchangeDate)
	if err != nil {
		return entity.ExchangeRate{}, &FieldError{Index: -1, Field: "datum_primjene", Err: entity.ErrMalformedDate, Detail: fmt.Sprintf("%q", *dto.ExchangeDate)}
	}

	rates := [3]float64{}
	for i, field := range []struct {
		name  string
		value string
	}{
		{"kupovni_tecaj", *dto.BuyingRate},
		{"srednji_tecaj", *dto.MiddleRate},
		{"prodajni_tecaj", *dto.SellingRate},
	} {
		rates[i], err = ParseLocalizedNumber(field.value)
		if err != nil {
			return entity.ExchangeRate{}, &FieldError{Index: -1, Field: field.name, Err: entity.ErrMalformedNumber, Detail: fmt.Sprintf("%q", field.value)}
		}
	}

	return entity.ExchangeRate{
		ExchangeNumber: *dto.ExchangeNumber,
		ExchangeDate:   exchangeDate,
		Country:        *dto.Country,
		CountryISO:     *dto.CountryISO,
		CurrencyCode:   *dto.CurrencyCode,
		Currency:       *dto.Currency,
		Unit:           *dto.Unit,
		BuyingRate:     rates[0],
		MiddleRate:     rates[1],
		SellingRate:    rates[2],
	}, nil
}
