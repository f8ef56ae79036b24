package eventmodels

import "strings"

// ChainSummary is the per symbol result of one scan.
type ChainSummary struct {
	Symbol                          string        `json:"symbol" csv:"symbol"`
	SymbolDate                      string        `json:"symbol_date" csv:"symbol_date"`
	Date                            string        `json:"date" csv:"date"`
	DataTimestamp                   string        `json:"data_timestamp" csv:"data_timestamp"`
	UnderlyingMid                   float64       `json:"underlying_mid" csv:"underlying_mid"`
	DealerDelta                     float64       `json:"dealer_delta" csv:"dealer_delta"`
	NaiveDealerDelta                float64       `json:"naive_dealer_delta" csv:"naive_dealer_delta"`
	PutCallOIRatio                  float64       `json:"put_call_oi_ratio" csv:"put_call_oi_ratio"`
	PutCallVolumeRatio              float64       `json:"put_call_volume_ratio" csv:"put_call_volume_ratio"`
	Bias                            int           `json:"bias" csv:"bias"`
	LargeTraderDelta                float64       `json:"large_trader_delta" csv:"large_trader_delta"`
	LargeTraderOpeningDelta         float64       `json:"large_trader_opening_delta" csv:"large_trader_opening_delta"`
	LargeTraderExpectation          Expectation   `json:"large_trader_expectation" csv:"large_trader_expectation"`
	LargeTraderAbsoluteValue        float64       `json:"large_trader_absolute_value" csv:"large_trader_absolute_value"`
	LargeTraderNetValue             float64       `json:"large_trader_net_value" csv:"large_trader_net_value"`
	LargeTraderOpeningNetValue      float64       `json:"large_trader_opening_net_value" csv:"large_trader_opening_net_value"`
	LargeTraderOpeningAbsoluteValue float64       `json:"large_trader_opening_absolute_value" csv:"large_trader_opening_absolute_value"`
	MedianSpreadValue               float64       `json:"median_spread_value" csv:"median_spread_value"`
	SpreadCount                     int           `json:"spread_count" csv:"spread_count"`
	SharesToTrade                   int64         `json:"shares_to_trade" csv:"shares_to_trade"`
	Spreads                         OptionSpreads `json:"-" csv:"-"`
}

// IsIndex reports whether the symbol is a cash index such as ^SPX.
func (c *ChainSummary) IsIndex() bool {
	return strings.Contains(c.Symbol, "^")
}
