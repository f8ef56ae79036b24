package eventmodels

import (
	"fmt"
	"strconv"
	"strings"
)

// ConditionID is the exchange assigned trade condition code.
type ConditionID uint8

type conditionFlag uint8

const (
	conditionMultiLeg conditionFlag = 1 << iota
	conditionStock
	conditionSweep
	conditionCancel
)

type conditionInfo struct {
	name  string
	flags conditionFlag
}

const (
	ConditionRegular             ConditionID = 0
	ConditionFormT               ConditionID = 1
	ConditionOutOfSeq            ConditionID = 2
	ConditionAvgPrc              ConditionID = 3
	ConditionOpenReportLate      ConditionID = 5
	ConditionOpenReportOutOfSeq  ConditionID = 6
	ConditionOpenReportInSeq     ConditionID = 7
	ConditionPriorReferencePrice ConditionID = 8
	ConditionNextDaySale         ConditionID = 9
	ConditionBunched             ConditionID = 10
	ConditionCashSale            ConditionID = 11
	ConditionSeller              ConditionID = 12
	ConditionSoldLast            ConditionID = 13
	ConditionRule127             ConditionID = 14
	ConditionBunchedSold         ConditionID = 15
	ConditionAutoExecution       ConditionID = 18
	ConditionReopen              ConditionID = 21
	ConditionAcquisition         ConditionID = 22
	ConditionRule155             ConditionID = 29
	ConditionDistribution        ConditionID = 30
	ConditionSplit               ConditionID = 31
	ConditionAdjTerms            ConditionID = 34
	ConditionSpread              ConditionID = 35
	ConditionStraddle            ConditionID = 36
	ConditionBuyWrite            ConditionID = 37
	ConditionCombo               ConditionID = 38
	ConditionSTPD                ConditionID = 39
	ConditionCANC                ConditionID = 40
	ConditionCANCLAST            ConditionID = 41
	ConditionCANCOPEN            ConditionID = 42
	ConditionCANCONLY            ConditionID = 43
	ConditionCANCSTPD            ConditionID = 44
	ConditionMatchCross          ConditionID = 45
	ConditionInternalCross       ConditionID = 54
	ConditionStoppedRegular      ConditionID = 55
	ConditionStoppedSoldLast     ConditionID = 56
	ConditionStoppedOutOfSeq     ConditionID = 57
	ConditionOpenReport          ConditionID = 62
	ConditionMarketOnClose       ConditionID = 63
	ConditionOutOfSeqPreMkt      ConditionID = 65
	ConditionMCOfficialOpen      ConditionID = 66
	ConditionYellowFlag          ConditionID = 79
	ConditionPreOpening          ConditionID = 89
	ConditionIntermarketSweep    ConditionID = 95
	ConditionDerivative          ConditionID = 96
	ConditionReopening           ConditionID = 97
	ConditionClosing             ConditionID = 98
	ConditionOddLotTrade         ConditionID = 99
	ConditionPriceVariation      ConditionID = 104
	ConditionContingent          ConditionID = 105
	ConditionStoppedIM           ConditionID = 106
	ConditionBenchmark           ConditionID = 107
	ConditionTradeThroughExempt  ConditionID = 108
	ConditionTradeCorrection     ConditionID = 111
	ConditionBlock               ConditionID = 112
	ConditionECRP                ConditionID = 113
	ConditionSingLegAuctNonISO   ConditionID = 114
	ConditionSingLegAuctISO      ConditionID = 115
	ConditionSingLegCrossNonISO  ConditionID = 116
	ConditionSingLegCrossISO     ConditionID = 117
	ConditionSingLegFlr          ConditionID = 118
	ConditionMultLegAutoEx       ConditionID = 119
	ConditionMultLegAuct         ConditionID = 120
	ConditionMultLegCross        ConditionID = 121
	ConditionMultLegFlr          ConditionID = 122
	ConditionMultLegAutoSingLeg  ConditionID = 123
	ConditionStkOptAuct          ConditionID = 124
	ConditionMultLegAuctSingLeg  ConditionID = 125
	ConditionMultLegFlrSingLeg   ConditionID = 126
	ConditionStkOptAutoEx        ConditionID = 127
	ConditionStkOptCross         ConditionID = 128
	ConditionStkOptFlr           ConditionID = 129
	ConditionStkOptAutoExSingLeg ConditionID = 130
	ConditionStkOptAuctSingLeg   ConditionID = 131
	ConditionStkOptFlrSingLeg    ConditionID = 132
	ConditionMultLegFlrPropProd  ConditionID = 133
	ConditionCorrConsClose       ConditionID = 134
	ConditionQualContTrade       ConditionID = 135
	ConditionMultiCompressProp   ConditionID = 136
	ConditionExtendedHours       ConditionID = 137
)

// conditionTable maps every known code to its display name and predicate bits.
// StkOptAutoEx (127) is reported by the feed without an attached equity print,
// so it carries the multi-leg bit only.
var conditionTable = map[ConditionID]conditionInfo{
	ConditionRegular:             {"Regular", 0},
	ConditionFormT:               {"Form T", 0},
	ConditionOutOfSeq:            {"Out Of Sequence", 0},
	ConditionAvgPrc:              {"AvgPrc", 0},
	ConditionOpenReportLate:      {"OpenReportLate", 0},
	ConditionOpenReportOutOfSeq:  {"OpenReportOutOfSeq", 0},
	ConditionOpenReportInSeq:     {"OpenReportInSeq", 0},
	ConditionPriorReferencePrice: {"PriorReferencePrice", 0},
	ConditionNextDaySale:         {"NextDaySale", 0},
	ConditionBunched:             {"Bunched", 0},
	ConditionCashSale:            {"CashSale", 0},
	ConditionSeller:              {"Seller", 0},
	ConditionSoldLast:            {"Sold Last", 0},
	ConditionRule127:             {"Rule127", 0},
	ConditionBunchedSold:         {"BunchedSold", 0},
	ConditionAutoExecution:       {"Single Leg Automated Execution", 0},
	ConditionReopen:              {"Reopen", 0},
	ConditionAcquisition:         {"Acquisition", 0},
	ConditionRule155:             {"Rule155", 0},
	ConditionDistribution:        {"Distribution", 0},
	ConditionSplit:               {"Split", 0},
	ConditionAdjTerms:            {"AdjTerms", 0},
	ConditionSpread:              {"Spread", 0},
	ConditionStraddle:            {"Straddle", 0},
	ConditionBuyWrite:            {"BuyWrite", 0},
	ConditionCombo:               {"Combo", 0},
	ConditionSTPD:                {"STPD", 0},
	ConditionCANC:                {"CANC", conditionCancel},
	ConditionCANCLAST:            {"CANCLAST", conditionCancel},
	ConditionCANCOPEN:            {"CANCOPEN", conditionCancel},
	ConditionCANCONLY:            {"CANCONLY", conditionCancel},
	ConditionCANCSTPD:            {"CANCSTPD", conditionCancel},
	ConditionMatchCross:          {"MatchCross", 0},
	ConditionInternalCross:       {"InternalCross", 0},
	ConditionStoppedRegular:      {"StoppedRegular", 0},
	ConditionStoppedSoldLast:     {"StoppedSoldLast", 0},
	ConditionStoppedOutOfSeq:     {"StoppedOutOfSeq", 0},
	ConditionOpenReport:          {"OpenReport", 0},
	ConditionMarketOnClose:       {"MarketOnClose", 0},
	ConditionOutOfSeqPreMkt:      {"OutOfSeqPreMkt", 0},
	ConditionMCOfficialOpen:      {"MCOfficialOpen", 0},
	ConditionYellowFlag:          {"YellowFlag", 0},
	ConditionPreOpening:          {"PreOpening", 0},
	ConditionIntermarketSweep:    {"Inter Market Sweep", conditionSweep},
	ConditionDerivative:          {"Derivative", 0},
	ConditionReopening:           {"Reopening", 0},
	ConditionClosing:             {"Closing", 0},
	ConditionOddLotTrade:         {"OddLotTrade", 0},
	ConditionPriceVariation:      {"PriceVariation", 0},
	ConditionContingent:          {"Contingent", 0},
	ConditionStoppedIM:           {"StoppedIM", 0},
	ConditionBenchmark:           {"Benchmark", 0},
	ConditionTradeThroughExempt:  {"TradeThroughExempt", 0},
	ConditionTradeCorrection:     {"TradeCorrection", 0},
	ConditionBlock:               {"Block", 0},
	ConditionECRP:                {"ECRP", 0},
	ConditionSingLegAuctNonISO:   {"Single Leg Auction non Sweep Order", 0},
	ConditionSingLegAuctISO:      {"Single Leg Auction Sweep Order", conditionSweep},
	ConditionSingLegCrossNonISO:  {"Single Leg Cross non Sweep Order", 0},
	ConditionSingLegCrossISO:     {"Single Leg Cross Sweep Order", conditionSweep},
	ConditionSingLegFlr:          {"Single Leg Floor Trade", 0},
	ConditionMultLegAutoEx:       {"Multi Leg Algorithmic Execution", conditionMultiLeg},
	ConditionMultLegAuct:         {"Multi Leg Auction", conditionMultiLeg},
	ConditionMultLegCross:        {"Multi Leg Cross", conditionMultiLeg},
	ConditionMultLegFlr:          {"Multi Leg Floor Trade", conditionMultiLeg},
	ConditionMultLegAutoSingLeg:  {"Multi Algorithmic vs Single Legs", conditionMultiLeg},
	ConditionStkOptAuct:          {"Multi Leg with Stock Auction", conditionMultiLeg | conditionStock},
	ConditionMultLegAuctSingLeg:  {"Multi Leg Auction vs Single Legs", conditionMultiLeg},
	ConditionMultLegFlrSingLeg:   {"Multi Leg Floor Trade vs Single Legs", conditionMultiLeg},
	ConditionStkOptAutoEx:        {"Multi Leg with Stock Algorithmic Execution", conditionMultiLeg},
	ConditionStkOptCross:         {"Multi Leg with Stock Cross", conditionMultiLeg | conditionStock},
	ConditionStkOptFlr:           {"Multi Leg with Stock Floor Trade", conditionMultiLeg | conditionStock},
	ConditionStkOptAutoExSingLeg: {"Multi Leg with Stock Algorithmic Execution vs Single Legs", conditionMultiLeg | conditionStock},
	ConditionStkOptAuctSingLeg:   {"Multi Leg with Stock Auction vs Single Legs", conditionMultiLeg | conditionStock},
	ConditionStkOptFlrSingLeg:    {"Multi Leg with Stock Floor Trade vs Single Legs", conditionMultiLeg | conditionStock},
	ConditionMultLegFlrPropProd:  {"Multi Leg Floor Trade of Proprietary Products", conditionMultiLeg},
	ConditionCorrConsClose:       {"CorrConsClose", 0},
	ConditionQualContTrade:       {"QualContTrade", 0},
	ConditionMultiCompressProp:   {"MultiCompressProp", 0},
	ConditionExtendedHours:       {"ExtendedHours", 0},
}

func (c ConditionID) has(flag conditionFlag) bool {
	return conditionTable[c].flags&flag != 0
}

func (c ConditionID) Valid() bool {
	_, ok := conditionTable[c]
	return ok
}

func (c ConditionID) IsMultiLeg() bool {
	return c.has(conditionMultiLeg)
}

func (c ConditionID) IncludesStockTrade() bool {
	return c.has(conditionStock)
}

func (c ConditionID) IsSweep() bool {
	return c.has(conditionSweep)
}

func (c ConditionID) IsCancel() bool {
	return c.has(conditionCancel)
}

func (c ConditionID) String() string {
	if info, ok := conditionTable[c]; ok {
		return info.name
	}

	return fmt.Sprintf("Condition(%d)", uint8(c))
}

func (c ConditionID) MarshalCSV() (string, error) {
	return c.String(), nil
}

// UnmarshalCSV accepts either the numeric code or the display name.
func (c *ConditionID) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if code, err := strconv.ParseUint(s, 10, 8); err == nil {
		*c = ConditionID(code)
		return nil
	}

	for id, info := range conditionTable {
		if info.name == s {
			*c = id
			return nil
		}
	}

	return fmt.Errorf("ConditionID: UnmarshalCSV: unknown condition: %s", s)
}
