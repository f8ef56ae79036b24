package spreads

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jiaming2012/options-flow/src/eventmodels"
)

type seqFunc func(eventmodels.OptionTrade) int64

func bySeqNo(t eventmodels.OptionTrade) int64 {
	return t.SeqNo
}

func byExchangeSeqNo(t eventmodels.OptionTrade) int64 {
	return t.ExchangeSeqNo
}

// sortedBy returns a copy of legs stably ordered by seq.
func sortedBy(legs []eventmodels.OptionTrade, seq seqFunc) []eventmodels.OptionTrade {
	out := make([]eventmodels.OptionTrade, len(legs))
	copy(out, legs)
	sort.SliceStable(out, func(i, j int) bool {
		return seq(out[i]) < seq(out[j])
	})

	return out
}

// isConsecutive reports whether every adjacent pair of the already ordered legs differs by exactly one.
func isConsecutive(legs []eventmodels.OptionTrade, seq seqFunc) bool {
	for i := 1; i < len(legs); i++ {
		if seq(legs[i]) != seq(legs[i-1])+1 {
			return false
		}
	}

	return true
}

// verifyLegs checks the sequence continuity of a candidate leg-set, first by
// global sequence number and then by exchange sequence number. The returned
// legs are in the ordering that passed.
func verifyLegs(legs []eventmodels.OptionTrade) ([]eventmodels.OptionTrade, bool) {
	ordered := sortedBy(legs, bySeqNo)
	if isConsecutive(ordered, bySeqNo) {
		return ordered, true
	}

	ordered = sortedBy(legs, byExchangeSeqNo)
	if isConsecutive(ordered, byExchangeSeqNo) {
		return ordered, true
	}

	return legs, false
}

func sequenceTrail(legs []eventmodels.OptionTrade) string {
	b := &strings.Builder{}

	ordered := sortedBy(legs, bySeqNo)
	if isConsecutive(ordered, bySeqNo) {
		b.WriteString("seq no ")
		for _, leg := range ordered {
			fmt.Fprintf(b, "%d-", leg.SeqNo)
		}

		return b.String()
	}

	b.WriteString("ex seq no ")
	for _, leg := range sortedBy(legs, byExchangeSeqNo) {
		fmt.Fprintf(b, "%d-", leg.ExchangeSeqNo)
	}

	return b.String()
}
