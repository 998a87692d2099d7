package models

// Leg type markers in NSE notation.
const (
	LegTypeCall = "CE"
	LegTypePut  = "PE"
)

// CreditSpread is one scored two-leg candidate: the sell leg is the strike
// nearer the money, the buy leg bounds the risk further out. Monetary
// fields are per-lot totals; MaxProfit, MaxLoss and Breakeven are rounded
// up to whole currency units, BreakevenDistancePercent is truncated to two
// decimals.
type CreditSpread struct {
	SellStrike               float64 `json:"sell_strike"`
	BuyStrike                float64 `json:"buy_strike"`
	SpreadWidth              float64 `json:"spread_width"`
	NetCredit                float64 `json:"net_credit"`
	MaxProfit                float64 `json:"max_profit"`
	MaxLoss                  float64 `json:"max_loss"`
	Breakeven                float64 `json:"breakeven"`
	BreakevenDistancePercent float64 `json:"breakeven_distance_percent"`
	LegType                  string  `json:"leg_type"`
}
