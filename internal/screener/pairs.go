package screener

import "spread-screener/internal/models"

type legPair struct {
	sell models.OptionChainEntry
	buy  models.OptionChainEntry
}

// pairLegs enumerates every ordered (sell, buy) combination over the
// filtered set. The input is ordered nearest the money first, so the sell
// leg is always the nearer strike and the buy leg bounds the risk further
// out. Full combination rather than adjacent-only: wider spreads stay on
// the table. Emission order is nearest sell leg first, then nearest buy
// leg per sell leg.
func pairLegs(eligible []models.OptionChainEntry) []legPair {
	if len(eligible) < 2 {
		return nil
	}
	pairs := make([]legPair, 0, len(eligible)*(len(eligible)-1)/2)
	for i := 0; i < len(eligible)-1; i++ {
		for j := i + 1; j < len(eligible); j++ {
			pairs = append(pairs, legPair{sell: eligible[i], buy: eligible[j]})
		}
	}
	return pairs
}
