// Package renderer turns simulator values into markdown reports.
//
// The core never prints; commands pick the reports they want and decide
// where the markdown goes (terminal, file, test assertion).
package renderer

import (
	"fmt"
	"strings"

	"tradesim"
)

// MarketData renders the current market snapshot as a markdown table,
// one row per registered instrument in registration order.
func MarketData(m *tradesim.Market) string {
	var b strings.Builder
	b.WriteString("# Current Market Data\n\n")
	b.WriteString("| Symbol | Name | Price |\n")
	b.WriteString("|---|---|---:|\n")
	empty := true
	for q := range m.Snapshot() {
		empty = false
		fmt.Fprintf(&b, "| %s | %s | %s |\n", q.Symbol, q.Name, q.Price)
	}
	if empty {
		return "# Current Market Data\n\nNo instruments registered.\n"
	}
	return b.String()
}

// Trade renders a successful trade result to a one-line confirmation.
func Trade(res tradesim.TradeResult) string {
	tx := res.Transaction
	verb := "bought"
	if tx.Side == tradesim.Sell {
		verb = "sold"
	}
	return fmt.Sprintf("%s %s %s shares of %s for %s. Cash left: %s",
		tx.AccountID, verb, tx.Quantity, tx.Symbol, tx.Value(), res.Cash)
}

// PriceUpdate renders a market-update notification.
func PriceUpdate(ev tradesim.PriceUpdate) string {
	return fmt.Sprintf("Market Update: %s is now %s (was %s)", ev.Symbol, ev.Price, ev.Previous)
}
