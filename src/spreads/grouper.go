package spreads

import (
	"sort"

	"github.com/jiaming2012/options-flow/src/eventmodels"
)

type groupKey struct {
	timestamp eventmodels.TimeOfDay
	exchange  eventmodels.Exchange
	condition eventmodels.ConditionID
	size      int
	split     bool
	splitSize int
}

func keyOf(t eventmodels.OptionTrade) groupKey {
	return groupKey{
		timestamp: t.Timestamp,
		exchange:  t.ExchangeID,
		condition: t.ConditionID,
		size:      t.Size,
	}
}

// LegGroup is one inferred multi-leg execution.
type LegGroup struct {
	// Split is set when the group came out of the size re-partition because
	// neither sequence ordering was consecutive.
	Split bool
	Legs  []eventmodels.OptionTrade
}

// GroupLegs partitions the multi-leg prints of a batch into leg-sets. Prints
// are bucketed by (timestamp, exchange, condition, size); a bucket is accepted
// when its sequence numbers or exchange sequence numbers run consecutively,
// otherwise it is re-partitioned by trade size. Groups are returned in the
// order they were registered.
func GroupLegs(trades []eventmodels.OptionTrade) []LegGroup {
	var candidates []eventmodels.OptionTrade
	for _, t := range trades {
		if t.ConditionID.IsMultiLeg() {
			candidates = append(candidates, t)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Timestamp < candidates[j].Timestamp
	})

	assigned := make([]bool, len(candidates))
	registered := make(map[groupKey]struct{})
	var groups []LegGroup

	register := func(key groupKey, legs []eventmodels.OptionTrade) {
		registered[key] = struct{}{}
		groups = append(groups, LegGroup{Split: key.split, Legs: legs})
	}

	for i := range candidates {
		if assigned[i] {
			continue
		}

		key := keyOf(candidates[i])

		var members []eventmodels.OptionTrade
		for j := i; j < len(candidates); j++ {
			if !assigned[j] && keyOf(candidates[j]) == key {
				assigned[j] = true
				members = append(members, candidates[j])
			}
		}

		sort.SliceStable(members, func(a, b int) bool {
			return members[a].Timestamp < members[b].Timestamp
		})

		if legs, ok := verifyLegs(members); ok {
			register(key, legs)
			continue
		}

		for _, m := range members {
			sub := key
			sub.split = true
			sub.splitSize = m.Size

			if _, found := registered[sub]; found {
				continue
			}

			var bySize []eventmodels.OptionTrade
			for _, other := range members {
				if other.Size == m.Size {
					bySize = append(bySize, other)
				}
			}

			register(sub, bySize)
		}
	}

	return groups
}
