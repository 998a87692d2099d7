// Package models defines the value records exchanged between the chain
// decoder, the screening engine, and the CLI.
package models

// MarketSnapshot holds the quote data for one leg. Absent fields are nil;
// every reader states its own substitution or exclusion rule rather than
// coercing silently.
type MarketSnapshot struct {
	LTP        *float64 `json:"ltp"`
	Volume     *int64   `json:"volume"`
	OI         *int64   `json:"oi"`
	ClosePrice *float64 `json:"close_price"`
	BidPrice   *float64 `json:"bid_price"`
	BidQty     *int64   `json:"bid_qty"`
	AskPrice   *float64 `json:"ask_price"`
	AskQty     *int64   `json:"ask_qty"`
	PrevOI     *int64   `json:"prev_oi"`
}

// GreeksSnapshot holds the greeks for one leg. The screener carries these
// through untouched; scoring never reads them.
type GreeksSnapshot struct {
	Vega  *float64 `json:"vega"`
	Theta *float64 `json:"theta"`
	Gamma *float64 `json:"gamma"`
	Delta *float64 `json:"delta"`
	IV    *float64 `json:"iv"`
}

// LegData is one side (call or put) of a strike.
type LegData struct {
	InstrumentKey string          `json:"instrument_key"`
	Market        *MarketSnapshot `json:"market_data"`
	Greeks        *GreeksSnapshot `json:"option_greeks"`
}

// OptionChainEntry is one strike for one expiry of one underlying.
// StrikePrice and UnderlyingSpotPrice are finite and non-negative; the
// decoder rejects anything else before entries reach the engine.
type OptionChainEntry struct {
	Expiry              string   `json:"expiry"`
	StrikePrice         float64  `json:"strike_price"`
	UnderlyingKey       string   `json:"underlying_key"`
	UnderlyingSpotPrice float64  `json:"underlying_spot_price"`
	Call                *LegData `json:"call_options"`
	Put                 *LegData `json:"put_options"`
}
