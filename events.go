package tradesim

// Event values returned by mutating operations. The original program
// printed to the console from inside the business logic; here the
// caller decides how (and whether) to render the outcome.

// TradeResult reports a successfully executed trade.
type TradeResult struct {
	Transaction Transaction // the record appended to the account's log
	Cash        Money       // the account's cash balance after the trade
}

// PriceUpdate reports a market price change on one instrument.
type PriceUpdate struct {
	Symbol   string
	Previous Money // the quote before the update
	Price    Money // the new current quote
}
