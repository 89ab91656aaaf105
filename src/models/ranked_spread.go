package models

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RankedSpread is the terminal projection of a filtered candidate: the wing
// widths, leg prices and delta are dropped, the risk metrics are added.
type RankedSpread struct {
	Symbol    StockSymbol
	Expiry    string
	K1        float64
	K2        float64
	K3        float64
	Credit    float64
	MaxProfit float64
	MaxLoss   float64
	Score     Score
}

type RankedSpreads []RankedSpread

func (spreads RankedSpreads) String() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"Symbol", "Expiry", "K1", "K2", "K3", "Credit", "Max Profit", "Max Loss", "Score"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	for _, s := range spreads {
		table.Append([]string{
			string(s.Symbol),
			s.Expiry,
			p.Sprintf("%.2f", s.K1),
			p.Sprintf("%.2f", s.K2),
			p.Sprintf("%.2f", s.K3),
			p.Sprintf("$%.2f", s.Credit),
			p.Sprintf("$%.2f", s.MaxProfit),
			p.Sprintf("$%.2f", s.MaxLoss),
			s.Score.String(),
		})
	}

	table.Render()
	return display.String()
}
