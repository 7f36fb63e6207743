package entity

import (
	"time"
)

// ExchangeRate represents one currency line of an HNB exchange rate bulletin
type ExchangeRate struct {
	ExchangeNumber string    `json:"exchange_number"`
	ExchangeDate   time.Time `json:"exchange_date"`
	Country        string    `json:"country"`
	CountryISO     string    `json:"country_iso"`
	CurrencyCode   string    `json:"currency_code"`
	Currency       string    `json:"currency"`
	Unit           uint32    `json:"unit"`
	BuyingRate     float64   `json:"buying_rate"`
	MiddleRate     float64   `json:"middle_rate"`
	SellingRate    float64   `json:"selling_rate"`
}
