// Package render prints exchange rates as a colored console table.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/damon-houk/hnb-exchange/internal/domain/entity"
	"github.com/fatih/color"
)

// ConsoleRenderer writes the rate list in the hnb-exchange line format
type ConsoleRenderer struct {
	out      io.Writer
	currency *color.Color
	rate     *color.Color
}

// NewConsoleRenderer creates a renderer writing to out; color is dropped when out is not a terminal
func NewConsoleRenderer(out io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{
		out:      out,
		currency: color.New(color.FgGreen),
		rate:     color.New(color.FgYellow),
	}
}

// RenderHeader announces the query before it is sent
func (r *ConsoleRenderer) RenderHeader(query entity.DateRangeQuery) error {
	_, err := fmt.Fprintf(r.out, "Getting rates for %s from %s to %s\n",
		query.Currency, query.StartParam(), query.EndParam())
	return err
}

// Render prints one line per rate: bulletin number, date, currency, unit and middle rate
func (r *ConsoleRenderer) Render(rates []entity.ExchangeRate) error {
	for _, rate := range rates {
		_, err := fmt.Fprintf(r.out, " %s %s %s %s %s\n",
			rate.ExchangeNumber,
			rate.ExchangeDate.Format(entity.DateLayout),
			r.currency.Sprint(center(" "+rate.Currency+" ", 5)),
			center(fmt.Sprint(rate.Unit), 4),
			r.rate.Sprintf("%.7f", rate.MiddleRate),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// center pads s to width, putting the odd space on the right
func center(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
