package eventmodels

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// OptionSpread is a reconstructed strategy. It holds only derived values, so
// two spreads built from identical legs compare equal with ==.
type OptionSpread struct {
	Symbol          string      `json:"symbol" csv:"symbol"`
	SpreadName      SpreadName  `json:"spread_name" csv:"spread_name"`
	SpreadType      SpreadType  `json:"spread_type" csv:"spread_type"`
	NetValue        float64     `json:"net_value" csv:"net_value"`
	ExpirationDate  string      `json:"expiration_date" csv:"expiration_date"`
	Dte             int         `json:"dte" csv:"dte"`
	NetIv           float64     `json:"net_iv" csv:"net_iv"`
	DeltaWhenOpened float64     `json:"delta_when_opened" csv:"delta_when_opened"`
	CurrentDelta    float64     `json:"current_delta" csv:"current_delta"`
	Expectation     Expectation `json:"expectation" csv:"expectation"`
	Timestamp       TimeOfDay   `json:"timestamp" csv:"timestamp"`
	ConditionID     ConditionID `json:"condition_id" csv:"condition_id"`
	Exchange        Exchange    `json:"exchange" csv:"exchange"`
	LegNumber       int         `json:"leg_number" csv:"leg_number"`
	Summary         string      `json:"summary" csv:"summary"`
	OpeningTrade    bool        `json:"opening_trade" csv:"opening_trade"`
	SequenceNumbers string      `json:"sequence_numbers" csv:"sequence_numbers"`
}

type OptionSpreads []OptionSpread

// Larger returns the spreads whose absolute net value exceeds threshold, preserving order.
func (s OptionSpreads) Larger(threshold float64) OptionSpreads {
	var out OptionSpreads
	for _, spread := range s {
		if math.Abs(spread.NetValue) > threshold {
			out = append(out, spread)
		}
	}

	return out
}

// TopByValue returns up to n spreads ordered by descending absolute net value.
func (s OptionSpreads) TopByValue(n int) OptionSpreads {
	sorted := make(OptionSpreads, len(s))
	copy(sorted, s)
	sort.SliceStable(sorted, func(i, j int) bool {
		return math.Abs(sorted[i].NetValue) > math.Abs(sorted[j].NetValue)
	})

	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}

	return sorted
}

func (s OptionSpreads) Table() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"Time", "Symbol", "Strategy", "Type", "Net Value", "Expiration", "Delta", "Expectation", "Legs", "Opening", "Summary"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	for _, spread := range s {
		table.Append([]string{
			spread.Timestamp.String(),
			spread.Symbol,
			string(spread.SpreadName),
			string(spread.SpreadType),
			fmt.Sprintf("$%s", p.Sprintf("%.2f", spread.NetValue)),
			spread.ExpirationDate,
			p.Sprintf("%.1f", spread.DeltaWhenOpened),
			string(spread.Expectation),
			fmt.Sprintf("%d", spread.LegNumber),
			fmt.Sprintf("%t", spread.OpeningTrade),
			spread.Summary,
		})
	}

	table.Render()
	return display.String()
}
