// Package cli provides the command-line interface for the spread screener.
package cli

import "fmt"

// FormatPrice formats a price with two decimals for quoted levels and four
// for sub-10 premiums.
func FormatPrice(price float64) string {
	if price >= 10 {
		return fmt.Sprintf("%.2f", price)
	}
	return fmt.Sprintf("%.4f", price)
}

// FormatStrike formats a strike price without trailing noise.
func FormatStrike(strike float64) string {
	if strike == float64(int64(strike)) {
		return fmt.Sprintf("%.0f", strike)
	}
	return fmt.Sprintf("%.2f", strike)
}

// FormatBidAsk formats a bid/ask quote pair; missing quotes print as dashes.
func FormatBidAsk(bid, ask *float64) string {
	b, a := "-", "-"
	if bid != nil {
		b = FormatPrice(*bid)
	}
	if ask != nil {
		a = FormatPrice(*ask)
	}
	return fmt.Sprintf("%s / %s", b, a)
}
