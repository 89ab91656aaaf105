package models

// OptionChainRow is one validated quote from the options chain: a single
// (symbol, expiry, strike, type) contract with its market data.
type OptionChainRow struct {
	Symbol StockSymbol
	Expiry string
	DTE    int
	Strike float64
	Type   OptionType
	Bid    float64
	Ask    float64
	Mid    float64
	Delta  float64
	IV     float64
}
