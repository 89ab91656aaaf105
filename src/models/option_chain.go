package models

// OptionChain is an immutable snapshot of option quotes. Scans never mutate
// it, so independent (symbol, expiry) scans can share one chain.
type OptionChain []OptionChainRow

// Calls returns the call rows for one (symbol, expiry) slice. Matching is
// exact and case-sensitive.
func (c OptionChain) Calls(symbol StockSymbol, expiry string) OptionChain {
	var calls OptionChain
	for _, row := range c {
		if row.Symbol == symbol && row.Expiry == expiry && row.Type == Call {
			calls = append(calls, row)
		}
	}

	return calls
}
