// Package cli provides the command-line interface for the spread screener.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"spread-screener/internal/chainio"
	"spread-screener/internal/logging"
	"spread-screener/internal/models"
	"spread-screener/internal/screener"
	"spread-screener/pkg/utils"
)

func newScreenCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screen",
		Short: "Screen an option chain snapshot for credit spreads",
		Long: `Screen a decoded option chain snapshot (JSON file, or '-' for stdin)
for two-leg credit spreads. Each candidate sells the strike nearer the
money and buys one further out, collecting net premium with bounded risk.`,
	}

	cmd.AddCommand(newBearCallCmd(app))
	cmd.AddCommand(newBullPutCmd(app))
	cmd.AddCommand(newChainCmd(app))

	cmd.PersistentFlags().Bool("enforce-spread", false, "reject legs quoted wider than the bid/ask ceiling")
	cmd.PersistentFlags().Bool("enforce-risk-reward", false, "reject spreads whose max loss exceeds the risk/reward multiple")
	cmd.PersistentFlags().Bool("sort-breakeven", false, "sort by breakeven distance, farthest first")

	return cmd
}

func newBearCallCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bear-call <chain.json>",
		Short: "Screen for bear call spreads (sell lower call, buy higher call)",
		Example: `  screener screen bear-call chain.json
  screener screen bear-call chain.json --enforce-spread --sort-breakeven
  cat chain.json | screener screen bear-call -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScreen(cmd, app, args[0], screener.SideCall)
		},
	}
}

func newBullPutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bull-put <chain.json>",
		Short: "Screen for bull put spreads (sell higher put, buy lower put)",
		Example: `  screener screen bull-put chain.json
  screener screen bull-put chain.json --enforce-risk-reward`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScreen(cmd, app, args[0], screener.SidePut)
		},
	}
}

func runScreen(cmd *cobra.Command, app *App, source string, side screener.Side) error {
	output := NewOutput(cmd)

	entries, err := readChain(source)
	if err != nil {
		logging.LogParseFailure(app.Logger, source, err)
		output.Error("Failed to parse option chain: %v", err)
		return err
	}

	params := screenParams(cmd)
	start := time.Now()

	var spreads []models.CreditSpread
	if side == screener.SidePut {
		spreads = app.Engine.BullPutSpreads(entries, params)
	} else {
		spreads = app.Engine.BearCallSpreads(entries, params)
	}

	eligible := len(app.Engine.FilterOTM(entries, side, params.EnforceBidAskSpread))
	logging.LogScreen(app.Logger, side.LegType(), len(entries), eligible, len(spreads), time.Since(start))

	return renderSpreads(output, side, spreads)
}

func screenParams(cmd *cobra.Command) screener.Params {
	enforceSpread, _ := cmd.Flags().GetBool("enforce-spread")
	enforceRR, _ := cmd.Flags().GetBool("enforce-risk-reward")
	sortBE, _ := cmd.Flags().GetBool("sort-breakeven")
	return screener.Params{
		EnforceBidAskSpread:     enforceSpread,
		EnforceRiskReward:       enforceRR,
		SortByBreakevenDistance: sortBE,
	}
}

// readChain loads and decodes a chain snapshot from a file or stdin.
func readChain(source string) ([]models.OptionChainEntry, error) {
	if source == "-" {
		return chainio.DecodeChainReader(os.Stdin)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return chainio.DecodeChain(data)
}

func renderSpreads(output *Output, side screener.Side, spreads []models.CreditSpread) error {
	if output.IsJSON() {
		data, err := chainio.EncodeSpreads(spreads)
		if err != nil {
			return err
		}
		output.Raw(data)
		return nil
	}

	title := "Bear Call Spreads"
	if side == screener.SidePut {
		title = "Bull Put Spreads"
	}
	output.Bold("%s (%d)", title, len(spreads))
	output.Println()

	if len(spreads) == 0 {
		output.Warning("No credit spreads matched the filters")
		return nil
	}

	table := NewTable(output, "Sell", "Buy", "Type", "Width", "Credit", "Max Profit", "Max Loss", "Breakeven", "BE Dist")
	for _, s := range spreads {
		table.AddRow(
			FormatStrike(s.SellStrike),
			FormatStrike(s.BuyStrike),
			s.LegType,
			utils.FormatIndianCurrency(s.SpreadWidth),
			output.CreditString(s.NetCredit, utils.FormatPnL(s.NetCredit)),
			output.Green(utils.FormatIndianCurrency(s.MaxProfit)),
			output.Red(utils.FormatIndianCurrency(s.MaxLoss)),
			FormatStrike(s.Breakeven),
			utils.FormatPercent(s.BreakevenDistancePercent),
		)
	}
	table.Render()
	return nil
}

func newChainCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain <chain.json>",
		Short: "Dump the OTM-filtered entries for one side",
		Long: `Diagnostic view of the chain filter: decode a snapshot and list the
out-of-the-money entries that would feed the pair generator.`,
		Example: `  screener screen chain chain.json --side CALL
  screener screen chain chain.json --side PUT --enforce-spread`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			sideStr, _ := cmd.Flags().GetString("side")
			side := screener.SideCall
			if strings.EqualFold(sideStr, string(screener.SidePut)) {
				side = screener.SidePut
			} else if !strings.EqualFold(sideStr, string(screener.SideCall)) {
				output.Error("Invalid side %q, expected CALL or PUT", sideStr)
				return fmt.Errorf("invalid side %q", sideStr)
			}

			entries, err := readChain(args[0])
			if err != nil {
				logging.LogParseFailure(app.Logger, args[0], err)
				output.Error("Failed to parse option chain: %v", err)
				return err
			}

			enforceSpread, _ := cmd.Flags().GetBool("enforce-spread")
			eligible := app.Engine.FilterOTM(entries, side, enforceSpread)

			if output.IsJSON() {
				return output.JSON(eligible)
			}

			output.Bold("OTM %s strikes (%d of %d entries)", side, len(eligible), len(entries))
			output.Println()
			if len(eligible) == 0 {
				output.Warning("No eligible strikes")
				return nil
			}

			table := NewTable(output, "Strike", "Spot", "LTP", "Bid / Ask", "Volume", "OI")
			for _, e := range eligible {
				leg := e.Call
				if side == screener.SidePut {
					leg = e.Put
				}
				ltp, vol, oi := "-", "-", "-"
				bidAsk := FormatBidAsk(nil, nil)
				if leg != nil && leg.Market != nil {
					if leg.Market.LTP != nil {
						ltp = FormatPrice(*leg.Market.LTP)
					}
					if leg.Market.Volume != nil {
						vol = utils.FormatVolume(*leg.Market.Volume)
					}
					if leg.Market.OI != nil {
						oi = utils.FormatVolume(*leg.Market.OI)
					}
					bidAsk = FormatBidAsk(leg.Market.BidPrice, leg.Market.AskPrice)
				}
				table.AddRow(
					FormatStrike(e.StrikePrice),
					FormatPrice(e.UnderlyingSpotPrice),
					ltp,
					bidAsk,
					vol,
					oi,
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().String("side", "CALL", "side to filter (CALL or PUT)")
	return cmd
}
