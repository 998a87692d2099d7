package screener

import (
	"math"

	"github.com/shopspring/decimal"

	"spread-screener/internal/models"
)

// score computes the economics of one (sell, buy) pair.
//
// Rounding is part of the contract: profit, loss and breakeven round up to
// the next whole currency unit (worst-for-trader display), while the
// breakeven distance percent truncates to two decimals and never rounds up.
func (e *Engine) score(sell, buy models.OptionChainEntry, side Side) models.CreditSpread {
	lot := e.cfg.LotSize
	width := math.Abs(buy.StrikePrice-sell.StrikePrice) * lot
	credit := (ltpOrZero(legFor(sell, side)) - ltpOrZero(legFor(buy, side))) * lot

	var breakeven float64
	if side == SidePut {
		// Put breakeven references the lower (buy) strike.
		breakeven = ceilWhole(buy.StrikePrice - credit/lot)
	} else {
		breakeven = ceilWhole(sell.StrikePrice + credit/lot)
	}

	spot := sell.UnderlyingSpotPrice
	var distance float64
	if spot > 0 {
		distance = truncate2(math.Abs(breakeven-spot) / spot * 100)
	}

	return models.CreditSpread{
		SellStrike:               sell.StrikePrice,
		BuyStrike:                buy.StrikePrice,
		SpreadWidth:              width,
		NetCredit:                credit,
		MaxProfit:                ceilWhole(credit),
		MaxLoss:                  ceilWhole(width - credit),
		Breakeven:                breakeven,
		BreakevenDistancePercent: distance,
		LegType:                  side.LegType(),
	}
}

// ltpOrZero substitutes 0.0 for an absent last traded price. The sell leg
// always has one after filtering; the buy leg uses the same rule anyway.
func ltpOrZero(leg *models.LegData) float64 {
	if leg == nil || leg.Market == nil || leg.Market.LTP == nil {
		return 0
	}
	return *leg.Market.LTP
}

// ceilWhole rounds toward positive infinity to the nearest whole currency
// unit.
func ceilWhole(v float64) float64 {
	return decimal.NewFromFloat(v).Ceil().InexactFloat64()
}

// truncate2 drops everything past two decimal places without rounding.
// Decimal arithmetic keeps values like 2.347 from rounding up to 2.35
// through float noise.
func truncate2(v float64) float64 {
	return decimal.NewFromFloat(v).Truncate(2).InexactFloat64()
}
