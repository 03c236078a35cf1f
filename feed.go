package tradesim

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

/*
	A quote document is a caller-supplied JSON payload:

	{
	    "quotes": [
	        {"symbol": "AAPL", "price": 155.50},
	        {"symbol": "GOOGL", "price": 2450.00}
	    ]
	}

	There is no feed transport here: documents come from files or stdin,
	price injection stays under the caller's control.
*/

// PriceQuote is one (symbol, price) pair extracted from a quote document.
type PriceQuote struct {
	Symbol string
	Price  Money
}

// DecodeQuotes extracts the quoted prices from a JSON quote document,
// denominated in the given currency.
func DecodeQuotes(r io.Reader, currency string) ([]PriceQuote, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("error decoding quote document: %w", err)
	}

	jsymbols, err := jsonpath.Get("$.quotes[*].symbol", jobj)
	if err != nil {
		return nil, fmt.Errorf("error reading quote symbols: %w", err)
	}
	jprices, err := jsonpath.Get("$.quotes[*].price", jobj)
	if err != nil {
		return nil, fmt.Errorf("error reading quote prices: %w", err)
	}

	symbols, ok := jsymbols.([]any)
	if !ok {
		return nil, fmt.Errorf("quote symbols: expected a list, got %T", jsymbols)
	}
	prices, ok := jprices.([]any)
	if !ok {
		return nil, fmt.Errorf("quote prices: expected a list, got %T", jprices)
	}
	if len(symbols) != len(prices) {
		return nil, fmt.Errorf("malformed quote document: %d symbols for %d prices", len(symbols), len(prices))
	}

	quotes := make([]PriceQuote, 0, len(symbols))
	for i := range symbols {
		symbol, ok := symbols[i].(string)
		if !ok {
			return nil, fmt.Errorf("quote %d: symbol is not a string: %v", i, symbols[i])
		}
		price, ok := prices[i].(float64)
		if !ok {
			return nil, fmt.Errorf("quote %d: price is not a number: %v", i, prices[i])
		}
		quotes = append(quotes, PriceQuote{Symbol: symbol, Price: M(price, currency)})
	}
	return quotes, nil
}
