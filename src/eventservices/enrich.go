package eventservices

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-flow/src/eventmodels"
)

const deltaShareUnits = 100.0

// EstimateExecutionPrice places the print relative to its quote. Prints reported
// on or through a side of the market take that side; everything else is compared
// with the quote midpoint.
func EstimateExecutionPrice(at eventmodels.OptionTradeAt, price, bid, ask float64) eventmodels.ExecutionPrice {
	switch at {
	case eventmodels.AboveAsk, eventmodels.OnAsk:
		return eventmodels.CloserToAsk
	case eventmodels.OnBid, eventmodels.BelowBid:
		return eventmodels.CloserToBid
	}

	mid := 0.5 * (bid + ask)
	if price < mid && price > 0 {
		return eventmodels.CloserToBid
	} else if price == mid {
		return eventmodels.ExactMidPrice
	}

	return eventmodels.CloserToAsk
}

func OrderActionFromExecution(exec eventmodels.ExecutionPrice) eventmodels.OrderAction {
	switch exec {
	case eventmodels.CloserToAsk:
		return eventmodels.Bought
	case eventmodels.CloserToBid:
		return eventmodels.Sold
	}

	return eventmodels.UnknownOrderAction
}

// EstimateOrderAction derives the side from the execution price. On a crossed
// market the bid is above the ask, so the side is flipped.
func EstimateOrderAction(at eventmodels.OptionTradeAt, exec eventmodels.ExecutionPrice) eventmodels.OrderAction {
	action := OrderActionFromExecution(exec)
	if at == eventmodels.CrossedMarket {
		return action.Flip()
	}

	return action
}

// EstimateTransaction guesses whether the print opened a position: a print larger
// than the existing open interest cannot be closing.
func EstimateTransaction(openInterest, size int, exec eventmodels.ExecutionPrice) eventmodels.TransactionType {
	opening := openInterest < size

	switch exec {
	case eventmodels.CloserToBid:
		if opening {
			return eventmodels.SellToOpen
		}
		return eventmodels.MaybeSellToClose
	case eventmodels.CloserToAsk:
		if opening {
			return eventmodels.BuyToOpen
		}
		return eventmodels.MaybeBuyToClose
	}

	return eventmodels.CouldNotDetermine
}

// DaysToExpiration counts calendar days from the date of asOf to the expiry date.
func DaysToExpiration(expiry string, asOf time.Time) (int, error) {
	exp, err := time.Parse(time.DateOnly, expiry)
	if err != nil {
		return 0, fmt.Errorf("DaysToExpiration: %w", err)
	}

	today := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	return int(exp.Sub(today).Hours() / 24), nil
}

// EnrichTrade converts a raw print and fills in side, execution price and
// transaction estimate from its quote. A nil quote leaves the side unknown.
func EnrichTrade(dto eventmodels.OptionTradeDTO, quote *eventmodels.OptionQuoteDTO, asOf time.Time) (eventmodels.OptionTrade, error) {
	trade, err := dto.ToModel()
	if err != nil {
		return eventmodels.OptionTrade{}, fmt.Errorf("EnrichTrade: %w", err)
	}

	dte, err := DaysToExpiration(trade.Expiry, asOf)
	if err != nil {
		return eventmodels.OptionTrade{}, fmt.Errorf("EnrichTrade: %s: %w", trade.Symbol, err)
	}

	trade.Dte = dte
	trade.Delta = dto.Delta * deltaShareUnits

	if quote == nil {
		return trade, nil
	}

	trade.ExecutionPrice = EstimateExecutionPrice(trade.OptionTradeAt, trade.Price, trade.Bid, trade.Ask)
	trade.OrderAction = EstimateOrderAction(trade.OptionTradeAt, trade.ExecutionPrice)
	trade.TransactionEstimate = EstimateTransaction(quote.OpenInterest, trade.Size, trade.ExecutionPrice)
	trade.CurrentDelta = quote.Delta * deltaShareUnits

	return trade, nil
}

func isCancelled(dto eventmodels.OptionTradeDTO) bool {
	if dto.CancelFlag != 0 {
		return true
	}

	if dto.ConditionID < 0 || dto.ConditionID > 255 {
		return false
	}

	return eventmodels.ConditionID(dto.ConditionID).IsCancel()
}

// EnrichTrades enriches a batch against a chain snapshot. Cancelled prints and
// rows that cannot be parsed are dropped.
func EnrichTrades(dtos []eventmodels.OptionTradeDTO, chain *eventmodels.OptionChainResponseDTO, asOf time.Time) []eventmodels.OptionTrade {
	quotes := map[string]eventmodels.OptionQuoteDTO{}
	if chain != nil {
		quotes = chain.QuotesBySymbol()
	}

	trades := make([]eventmodels.OptionTrade, 0, len(dtos))
	unmatched := 0

	for _, dto := range dtos {
		if isCancelled(dto) {
			continue
		}

		var quote *eventmodels.OptionQuoteDTO
		if q, found := quotes[dto.Option]; found {
			quote = &q
		} else {
			unmatched++
		}

		trade, err := EnrichTrade(dto, quote, asOf)
		if err != nil {
			log.Warnf("EnrichTrades: skipping trade: %v", err)
			continue
		}

		trades = append(trades, trade)
	}

	if unmatched > 0 {
		log.Debugf("EnrichTrades: %d trades without a quote", unmatched)
	}

	return trades
}
