package renderer

import (
	"fmt"
	"strings"

	"tradesim"
)

// Performance renders an account's portfolio performance report: cash,
// one row per holding valued at the current price, and the totals. The
// instruments are resolved against the market; holdings whose
// instrument is no longer registered are listed without a valuation.
func Performance(a *tradesim.Account, m *tradesim.Market) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Performance for %s\n\n", a.ID())
	fmt.Fprintf(&b, "Cash Balance: %s\n\n", a.Cash())

	rows := 0
	var body strings.Builder
	stockValue := tradesim.M(0, a.Cash().Currency())
	for symbol, quantity := range a.Holdings() {
		instrument, ok := m.Instrument(symbol)
		if !ok {
			fmt.Fprintf(&body, "| %s | %s | - | - |\n", symbol, quantity)
			rows++
			continue
		}
		value := instrument.Price().Mul(quantity)
		stockValue = stockValue.Add(value)
		fmt.Fprintf(&body, "| %s | %s | %s | %s |\n", symbol, quantity, instrument.Price(), value)
		rows++
	}

	if rows == 0 {
		b.WriteString("Portfolio is empty.\n")
		return b.String()
	}

	b.WriteString("| Symbol | Shares | Price | Value |\n")
	b.WriteString("|---|---:|---:|---:|\n")
	b.WriteString(body.String())
	fmt.Fprintf(&b, "\nTotal Stock Market Value: %s\n", stockValue)
	fmt.Fprintf(&b, "Total Portfolio Value (Cash + Stock): %s\n", a.PortfolioValue(m.Instrument))
	return b.String()
}

// History renders an account's transaction log, one line per record in
// insertion order.
func History(a *tradesim.Account) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transaction History for %s\n\n", a.ID())
	empty := true
	for _, tx := range a.Transactions() {
		empty = false
		fmt.Fprintf(&b, "- %s\n", tx)
	}
	if empty {
		b.WriteString("No transactions recorded.\n")
	}
	return b.String()
}
