package eventmodels

import (
	"fmt"
	"strconv"
	"strings"
)

// Exchange is the numeric venue code attached to every print.
type Exchange uint8

const (
	ExchangeNasdaq       Exchange = 1
	ExchangeNasdaqADF    Exchange = 2
	ExchangeNYSE         Exchange = 3
	ExchangeAMEX         Exchange = 4
	ExchangeCBOE         Exchange = 5
	ExchangeISE          Exchange = 6
	ExchangeNYSEArca     Exchange = 7
	ExchangeNYSENational Exchange = 8
	ExchangePHLX         Exchange = 9
	ExchangeBoston       Exchange = 11
	ExchangeNasdaqBB     Exchange = 14
	ExchangeNasdaqOTC    Exchange = 15
	ExchangeChicago      Exchange = 17
	ExchangeCME          Exchange = 20
	ExchangeISEMercury   Exchange = 22
	ExchangeDowJones     Exchange = 30
	ExchangeISEGemini    Exchange = 31
	ExchangeC2           Exchange = 42
	ExchangeMIAX         Exchange = 43
	ExchangeBX           Exchange = 47
	ExchangeCBOEFutures  Exchange = 54
	ExchangeNSXTRF       Exchange = 57
	ExchangeNYSETRF      Exchange = 59
	ExchangeBATS         Exchange = 60
	ExchangeBATSEquity   Exchange = 63
	ExchangeEdgeA        Exchange = 64
	ExchangeEdgeX        Exchange = 65
	ExchangeIEX          Exchange = 68
	ExchangeMIAXPearl    Exchange = 69
	ExchangeMIAXEmerald  Exchange = 71
	ExchangeCHIXEurope   Exchange = 115
	ExchangeLTSE         Exchange = 117
	ExchangeFINRAADF     Exchange = 118
	ExchangeFINRATRF     Exchange = 119
	ExchangeMEMX         Exchange = 120
)

var exchangeNames = map[Exchange]string{
	ExchangeNasdaq:       "NASDAQ",
	ExchangeNasdaqADF:    "NASDAQ ADF",
	ExchangeNYSE:         "NYSE",
	ExchangeAMEX:         "American Stock Exchange",
	ExchangeCBOE:         "CBOE",
	ExchangeISE:          "International Securities Exchange",
	ExchangeNYSEArca:     "NYSE ARCA",
	ExchangeNYSENational: "NYSE National",
	ExchangePHLX:         "Philadephia Stock Exchange",
	ExchangeBoston:       "Boston Stock Exchange",
	ExchangeNasdaqBB:     "NASDAQ Bulletin Board",
	ExchangeNasdaqOTC:    "NASDAQ OTC Pink Sheets",
	ExchangeChicago:      "Chicago Stock Exchange",
	ExchangeCME:          "CME",
	ExchangeISEMercury:   "ISE Mercury",
	ExchangeDowJones:     "Dow Jones Indices",
	ExchangeISEGemini:    "ISE Gemini",
	ExchangeC2:           "C2",
	ExchangeMIAX:         "MIAX Options Exchange",
	ExchangeBX:           "NASDAQ OMX BX Options",
	ExchangeCBOEFutures:  "CBOE Futures",
	ExchangeNSXTRF:       "NSX Trade Reporting",
	ExchangeNYSETRF:      "NYSE Trade Reporting",
	ExchangeBATS:         "BATS Option & Equity",
	ExchangeBATSEquity:   "BATS Equity",
	ExchangeEdgeA:        "Direct Edge A",
	ExchangeEdgeX:        "Direct Edge X",
	ExchangeIEX:          "IEX Stock Exchange",
	ExchangeMIAXPearl:    "MIAX Pearl",
	ExchangeMIAXEmerald:  "MIAX Emerald Options",
	ExchangeCHIXEurope:   "CHI-X Europe",
	ExchangeLTSE:         "Long Term Stock Exchange",
	ExchangeFINRAADF:     "FINRA ADF",
	ExchangeFINRATRF:     "FINRA NASDAQ TRF Chicago",
	ExchangeMEMX:         "Members Exchange",
}

func (e Exchange) Valid() bool {
	_, ok := exchangeNames[e]
	return ok
}

func (e Exchange) String() string {
	if name, ok := exchangeNames[e]; ok {
		return name
	}

	return fmt.Sprintf("Exchange(%d)", uint8(e))
}

func (e Exchange) MarshalCSV() (string, error) {
	return e.String(), nil
}

func (e *Exchange) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if code, err := strconv.ParseUint(s, 10, 8); err == nil {
		*e = Exchange(code)
		return nil
	}

	for id, name := range exchangeNames {
		if name == s {
			*e = id
			return nil
		}
	}

	return fmt.Errorf("Exchange: UnmarshalCSV: unknown exchange: %s", s)
}
