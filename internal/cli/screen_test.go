package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"spread-screener/internal/config"
	"spread-screener/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		Screener: config.ScreenerConfig{
			LotSize:            25,
			MaxBidAskSpread:    2.0,
			RiskRewardMultiple: 3.0,
		},
		Logging: config.LoggingConfig{Level: "info"},
	}
}

func writeChainFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chain.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const testChain = `[
  {
    "expiry": "2026-08-27",
    "strike_price": 105.0,
    "underlying_key": "NSE_INDEX|Nifty 50",
    "underlying_spot_price": 100.0,
    "call_options": {
      "instrument_key": "NSE_FO|45450",
      "market_data": {"ltp": 3.0, "bid_price": 2.9, "ask_price": 3.1}
    }
  },
  {
    "expiry": "2026-08-27",
    "strike_price": 110.0,
    "underlying_key": "NSE_INDEX|Nifty 50",
    "underlying_spot_price": 100.0,
    "call_options": {
      "instrument_key": "NSE_FO|45452",
      "market_data": {"ltp": 1.0, "bid_price": 0.9, "ask_price": 1.1}
    }
  }
]`

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd(testConfig(), zerolog.Nop())
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestScreenBearCallJSON(t *testing.T) {
	path := writeChainFile(t, testChain)

	out, err := runCommand(t, "screen", "bear-call", path, "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var spreads []models.CreditSpread
	if err := json.Unmarshal([]byte(out), &spreads); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(spreads) != 1 {
		t.Fatalf("expected 1 spread, got %d", len(spreads))
	}

	s := spreads[0]
	if s.SellStrike != 105 || s.BuyStrike != 110 || s.Breakeven != 107 {
		t.Errorf("wrong spread: %+v", s)
	}
	if s.MaxProfit != 50 || s.MaxLoss != 75 {
		t.Errorf("wrong economics: %+v", s)
	}
	if s.LegType != models.LegTypeCall {
		t.Errorf("leg type = %q, want CE", s.LegType)
	}
}

func TestScreenBullPutEmptyResult(t *testing.T) {
	// The test chain has no puts, so the put screen finds nothing.
	path := writeChainFile(t, testChain)

	out, err := runCommand(t, "screen", "bull-put", path, "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var spreads []models.CreditSpread
	if err := json.Unmarshal([]byte(out), &spreads); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(spreads) != 0 {
		t.Errorf("expected empty result, got %d spreads", len(spreads))
	}
}

func TestScreenMalformedChainFails(t *testing.T) {
	path := writeChainFile(t, `[{"expiry":"2026-08-27","underlying_key":"K","underlying_spot_price":100}]`)

	_, err := runCommand(t, "screen", "bear-call", path, "--json")
	if err == nil {
		t.Fatal("expected error for malformed chain")
	}
}

func TestScreenChainDump(t *testing.T) {
	path := writeChainFile(t, testChain)

	out, err := runCommand(t, "screen", "chain", path, "--side", "CALL", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var entries []models.OptionChainEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 eligible entries, got %d", len(entries))
	}
}

func TestScreenChainRejectsBadSide(t *testing.T) {
	path := writeChainFile(t, testChain)

	if _, err := runCommand(t, "screen", "chain", path, "--side", "STRADDLE"); err == nil {
		t.Fatal("expected error for invalid side")
	}
}
