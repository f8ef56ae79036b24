package eventmodels

import (
	"fmt"
)

// OptionTradeDTO is one row of the all-option-trades feed before enrichment.
type OptionTradeDTO struct {
	Root                 string   `json:"root"`
	Option               string   `json:"option"`
	Size                 int      `json:"option_trade_size"`
	Strike               float64  `json:"strike"`
	Expiry               string   `json:"expiry"`
	OptionType           string   `json:"option_type"`
	Price                *float64 `json:"option_trade_price"`
	Bid                  *float64 `json:"option_bid"`
	Ask                  *float64 `json:"option_ask"`
	OptionTradeAt        string   `json:"option_trade_at"`
	Iv                   float64  `json:"iv"`
	Delta                float64  `json:"delta"`
	CancelFlag           int      `json:"cancel_flag"`
	ConditionID          int      `json:"condition_id"`
	ExchangeID           int      `json:"exchange_id"`
	ImpliedUnderlyingAsk *float64 `json:"implied_underlying_ask"`
	ImpliedUnderlyingBid *float64 `json:"implied_underlying_bid"`
	ImpliedUnderlyingMid *float64 `json:"implied_underlying_mid"`
	Timestamp            string   `json:"timestamp"`
	SeqNo                int64    `json:"seq_no"`
	ExchangeSeqNo        int64    `json:"exchange_seq_no"`
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}

// ToModel converts the raw row. Side, transaction estimate and current delta are
// left unknown for the enrichment step to fill in.
func (dto *OptionTradeDTO) ToModel() (OptionTrade, error) {
	optionType, err := ParseOptionType(dto.OptionType)
	if err != nil {
		return OptionTrade{}, fmt.Errorf("OptionTradeDTO.ToModel: %s: %w", dto.Option, err)
	}

	ts, err := ParseTimeOfDay(dto.Timestamp)
	if err != nil {
		return OptionTrade{}, fmt.Errorf("OptionTradeDTO.ToModel: %s: %w", dto.Option, err)
	}

	if dto.ConditionID < 0 || dto.ConditionID > 255 {
		return OptionTrade{}, fmt.Errorf("OptionTradeDTO.ToModel: %s: condition id out of range: %d", dto.Option, dto.ConditionID)
	}

	if dto.ExchangeID < 0 || dto.ExchangeID > 255 {
		return OptionTrade{}, fmt.Errorf("OptionTradeDTO.ToModel: %s: exchange id out of range: %d", dto.Option, dto.ExchangeID)
	}

	return OptionTrade{
		Root:                 dto.Root,
		Symbol:               dto.Option,
		Strike:               dto.Strike,
		Expiry:               dto.Expiry,
		OptionType:           optionType,
		OrderAction:          UnknownOrderAction,
		OptionTradeAt:        OptionTradeAt(dto.OptionTradeAt),
		ExecutionPrice:       UnknownExecutionPrice,
		Size:                 dto.Size,
		ConditionID:          ConditionID(dto.ConditionID),
		ExchangeID:           Exchange(dto.ExchangeID),
		SeqNo:                dto.SeqNo,
		ExchangeSeqNo:        dto.ExchangeSeqNo,
		Timestamp:            ts,
		Price:                valueOrZero(dto.Price),
		Bid:                  valueOrZero(dto.Bid),
		Ask:                  valueOrZero(dto.Ask),
		ImpliedUnderlyingBid: valueOrZero(dto.ImpliedUnderlyingBid),
		ImpliedUnderlyingAsk: valueOrZero(dto.ImpliedUnderlyingAsk),
		ImpliedUnderlyingMid: valueOrZero(dto.ImpliedUnderlyingMid),
		Iv:                   dto.Iv,
		Delta:                dto.Delta,
		TransactionEstimate:  Uncalculated,
	}, nil
}
