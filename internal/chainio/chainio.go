// Package chainio is the boundary layer around the screening engine: it
// decodes raw option-chain snapshots into model records and encodes the
// results back into the JSON exchange format. The engine itself never
// touches text.
package chainio

import (
	"io"
	"math"

	jsoniter "github.com/json-iterator/go"

	"spread-screener/internal/errors"
	"spread-screener/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// wireEntry shadows models.OptionChainEntry with pointer fields so absent
// required fields can be told apart from zero values.
type wireEntry struct {
	Expiry              *string  `json:"expiry"`
	StrikePrice         *float64 `json:"strike_price"`
	UnderlyingKey       *string  `json:"underlying_key"`
	UnderlyingSpotPrice *float64 `json:"underlying_spot_price"`
	Call                *wireLeg `json:"call_options"`
	Put                 *wireLeg `json:"put_options"`
}

type wireLeg struct {
	InstrumentKey *string                `json:"instrument_key"`
	Market        *models.MarketSnapshot `json:"market_data"`
	Greeks        *models.GreeksSnapshot `json:"option_greeks"`
}

// DecodeChain parses a chain snapshot. Any shape violation — missing
// required field, wrong type, non-finite or negative strike/spot — fails
// the whole call with an error matching errors.ErrMalformedInput. No
// partial results are ever returned.
func DecodeChain(data []byte) ([]models.OptionChainEntry, error) {
	var raw []wireEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewChainEnvelopeError("cannot decode snapshot", err)
	}

	entries := make([]models.OptionChainEntry, 0, len(raw))
	for i, w := range raw {
		entry, err := buildEntry(i, w)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// DecodeChainReader reads and decodes a chain snapshot from r.
func DecodeChainReader(r io.Reader) ([]models.OptionChainEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewChainEnvelopeError("cannot read snapshot", err)
	}
	return DecodeChain(data)
}

func buildEntry(i int, w wireEntry) (models.OptionChainEntry, error) {
	var zero models.OptionChainEntry

	if w.Expiry == nil {
		return zero, errors.NewChainError(i, "expiry", "missing")
	}
	if w.UnderlyingKey == nil {
		return zero, errors.NewChainError(i, "underlying_key", "missing")
	}
	if w.StrikePrice == nil {
		return zero, errors.NewChainError(i, "strike_price", "missing")
	}
	if w.UnderlyingSpotPrice == nil {
		return zero, errors.NewChainError(i, "underlying_spot_price", "missing")
	}
	if !validPrice(*w.StrikePrice) {
		return zero, errors.NewChainError(i, "strike_price", "must be finite and non-negative")
	}
	if !validPrice(*w.UnderlyingSpotPrice) {
		return zero, errors.NewChainError(i, "underlying_spot_price", "must be finite and non-negative")
	}

	call, err := buildLeg(i, "call_options", w.Call)
	if err != nil {
		return zero, err
	}
	put, err := buildLeg(i, "put_options", w.Put)
	if err != nil {
		return zero, err
	}

	return models.OptionChainEntry{
		Expiry:              *w.Expiry,
		StrikePrice:         *w.StrikePrice,
		UnderlyingKey:       *w.UnderlyingKey,
		UnderlyingSpotPrice: *w.UnderlyingSpotPrice,
		Call:                call,
		Put:                 put,
	}, nil
}

func buildLeg(i int, field string, w *wireLeg) (*models.LegData, error) {
	if w == nil {
		return nil, nil
	}
	if w.InstrumentKey == nil {
		return nil, errors.NewChainError(i, field+".instrument_key", "missing")
	}
	return &models.LegData{
		InstrumentKey: *w.InstrumentKey,
		Market:        w.Market,
		Greeks:        w.Greeks,
	}, nil
}

func validPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// EncodeSpreads encodes the scored spreads into the JSON exchange format.
func EncodeSpreads(spreads []models.CreditSpread) ([]byte, error) {
	return json.MarshalIndent(spreads, "", "  ")
}
