// Package codec decodes the HNB exchange rate list, whose rates are strings in
// Croatian number format ("1.234,56") and whose dates are yyyy-MM-dd strings.
package codec

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/damon-houk/hnb-exchange/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Magnitude bounds, in decimal digits, outside of which a value cannot be a
// finite non-zero float64.
const (
	maxMagnitude = 310
	minMagnitude = -330
)

// numberGrammar is the JSON number grammar applied after separators are normalized.
var numberGrammar = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// ParseLocalizedNumber parses a non-negative number written with '.' as the
// thousands separator and ',' as the decimal separator
func ParseLocalizedNumber(s string) (float64, error) {
	normalized := strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", ".")
	if !numberGrammar.MatchString(normalized) {
		return 0, fmt.Errorf("%w: %q", entity.ErrMalformedNumber, s)
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", entity.ErrMalformedNumber, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", entity.ErrMalformedNumber, s)
	}
	if d.IsZero() {
		return 0, nil
	}

	// Float64 expands the exponent into a big.Rat, so extreme exponents are
	// settled before the conversion.
	magnitude := int64(d.Exponent()) + int64(d.NumDigits())
	if magnitude > maxMagnitude {
		return 0, fmt.Errorf("%w: %q is out of range", entity.ErrMalformedNumber, s)
	}
	if magnitude < minMagnitude {
		return 0, nil
	}

	f, _ := d.Float64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is out of range", entity.ErrMalformedNumber, s)
	}

	return f, nil
}

// FormatLocalizedNumber writes v the way HNB does, grouping thousands with '.'
// and using ',' for decimals. The shortest representation that parses back to v is used.
func FormatLocalizedNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	plain := decimal.NewFromFloat(v).String()

	sign := ""
	if strings.HasPrefix(plain, "-") {
		sign, plain = "-", plain[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(plain, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	if hasFrac {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}

	return b.String()
}

// ParseDate parses a strict yyyy-MM-dd calendar date as midnight UTC
func ParseDate(s string) (time.Time, error) {
	date, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a yyyy-MM-dd date", entity.ErrMalformedDate, s)
	}
	return date, nil
}
