// Package tradesim implements a closed, single-process trading simulator.
//
// The model is small and deliberate: a Market owns tradable Instruments
// and user Accounts. Trades execute immediately at the instrument's
// current quoted price, cash and holdings are adjusted atomically, and
// every successful trade is recorded in the account's append-only
// transaction log. There is no order book, no matching engine and no
// persistence: price updates are injected by the caller, and reporting
// functions are pure reads over the in-memory state.
//
// Operations never print. They return event values (TradeResult,
// PriceUpdate) that the caller may render, log, or assert on; the
// renderer package turns them into markdown reports for the tsim CLI.
package tradesim
