// Package screener derives credit-spread candidates from an options-chain
// snapshot. One pass per call: select out-of-the-money strikes on the
// relevant side, enumerate sell/buy strike pairs, score each pair's
// economics, then apply the caller-selected filters and ordering.
package screener

import (
	"sort"

	"spread-screener/internal/models"
)

// Side selects which leg of the chain a screen operates on.
type Side string

const (
	SideCall Side = "CALL"
	SidePut  Side = "PUT"
)

// LegType returns the NSE leg type marker for the side.
func (s Side) LegType() string {
	if s == SidePut {
		return models.LegTypePut
	}
	return models.LegTypeCall
}

// Config holds the engine constants. They are injectable so property tests
// can run across alternate contract sizes, never hard-baked at use sites.
type Config struct {
	// LotSize is the number of underlying units one contract represents;
	// it multiplies per-unit premiums into currency totals.
	LotSize float64
	// MaxBidAskSpread is the absolute currency ceiling on |ask - bid| when
	// the liquidity screen is enabled.
	MaxBidAskSpread float64
	// RiskRewardMultiple caps max loss at this multiple of max profit when
	// the risk/reward screen is enabled.
	RiskRewardMultiple float64
}

// DefaultConfig returns the NIFTY-style defaults.
func DefaultConfig() Config {
	return Config{
		LotSize:            25,
		MaxBidAskSpread:    2.0,
		RiskRewardMultiple: 3.0,
	}
}

// Params is the per-invocation flag set. Flags are independent and compose
// freely; no defaults are inferred.
type Params struct {
	EnforceBidAskSpread     bool
	EnforceRiskReward       bool
	SortByBreakevenDistance bool
}

// Engine screens option chains. It holds only its immutable config and is
// safe for concurrent use.
type Engine struct {
	cfg Config
}

// New creates an engine with the given constants.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// BearCallSpreads screens the chain for call credit spreads: sell an OTM
// call, buy a further OTM call above it.
func (e *Engine) BearCallSpreads(chain []models.OptionChainEntry, p Params) []models.CreditSpread {
	return e.screen(chain, SideCall, p)
}

// BullPutSpreads screens the chain for put credit spreads: sell an OTM put,
// buy a further OTM put below it.
func (e *Engine) BullPutSpreads(chain []models.OptionChainEntry, p Params) []models.CreditSpread {
	return e.screen(chain, SidePut, p)
}

func (e *Engine) screen(chain []models.OptionChainEntry, side Side, p Params) []models.CreditSpread {
	eligible := e.FilterOTM(chain, side, p.EnforceBidAskSpread)
	pairs := pairLegs(eligible)

	spreads := make([]models.CreditSpread, 0, len(pairs))
	for _, pr := range pairs {
		spreads = append(spreads, e.score(pr.sell, pr.buy, side))
	}

	if p.EnforceRiskReward {
		spreads = e.applyRiskReward(spreads)
	}
	if p.SortByBreakevenDistance {
		sortByBreakevenDistance(spreads)
	}
	return spreads
}

// applyRiskReward drops spreads whose rounded loss exceeds the configured
// multiple of rounded profit. Evaluated on the already-rounded values.
func (e *Engine) applyRiskReward(spreads []models.CreditSpread) []models.CreditSpread {
	kept := make([]models.CreditSpread, 0, len(spreads))
	for _, s := range spreads {
		if s.MaxLoss <= e.cfg.RiskRewardMultiple*s.MaxProfit {
			kept = append(kept, s)
		}
	}
	return kept
}

// sortByBreakevenDistance orders farthest breakeven first. The sort is
// stable: ties keep generation order.
func sortByBreakevenDistance(spreads []models.CreditSpread) {
	sort.SliceStable(spreads, func(i, j int) bool {
		return spreads[i].BreakevenDistancePercent > spreads[j].BreakevenDistancePercent
	})
}
