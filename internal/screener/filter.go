package screener

import (
	"math"
	"sort"

	"spread-screener/internal/models"
)

// FilterOTM returns the entries out-of-the-money for the given side whose
// leg carries a usable last traded price, ordered nearest the money first.
// With enforceSpread set, legs missing either quote or quoted wider than
// MaxBidAskSpread are excluded as well.
//
// A strike exactly at spot is never OTM for either side. Missing data here
// is a filtering decision, not an error: the entry is silently excluded.
func (e *Engine) FilterOTM(chain []models.OptionChainEntry, side Side, enforceSpread bool) []models.OptionChainEntry {
	out := make([]models.OptionChainEntry, 0, len(chain))
	for _, entry := range chain {
		if !isOTM(entry, side) {
			continue
		}
		leg := legFor(entry, side)
		if leg == nil || leg.Market == nil || leg.Market.LTP == nil {
			continue
		}
		if enforceSpread && !withinBidAsk(leg.Market, e.cfg.MaxBidAskSpread) {
			continue
		}
		out = append(out, entry)
	}

	// Nearest the money first: ascending strikes for calls, descending
	// for puts. Stable so equal strikes keep input order.
	sort.SliceStable(out, func(i, j int) bool {
		if side == SidePut {
			return out[i].StrikePrice > out[j].StrikePrice
		}
		return out[i].StrikePrice < out[j].StrikePrice
	})
	return out
}

func isOTM(entry models.OptionChainEntry, side Side) bool {
	if side == SidePut {
		return entry.StrikePrice < entry.UnderlyingSpotPrice
	}
	return entry.StrikePrice > entry.UnderlyingSpotPrice
}

func legFor(entry models.OptionChainEntry, side Side) *models.LegData {
	if side == SidePut {
		return entry.Put
	}
	return entry.Call
}

// withinBidAsk reports whether both quotes are present and no wider apart
// than the ceiling. A missing quote fails the check.
func withinBidAsk(m *models.MarketSnapshot, ceiling float64) bool {
	if m.BidPrice == nil || m.AskPrice == nil {
		return false
	}
	return math.Abs(*m.AskPrice-*m.BidPrice) <= ceiling
}
