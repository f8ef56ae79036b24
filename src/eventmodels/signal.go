package eventmodels

type Signal struct {
	Symbol              string     `json:"symbol" csv:"symbol"`
	Side                SignalType `json:"side" csv:"side"`
	Quantity1           int64      `json:"quantity_1" csv:"quantity_1"`
	Quantity2           int64      `json:"quantity_2" csv:"quantity_2"`
	LargeTraderNetValue float64    `json:"large_trader_net_value" csv:"large_trader_net_value"`
}
