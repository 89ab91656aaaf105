package models

// SpreadCandidate is one Broken Wing Butterfly call spread: long 1 call at
// K1, short 2 calls at K2, long 1 call at K3, with K1 < K2 < K3. Cost is
// PriceK1 - 2*PriceK2 + PriceK3 at mid prices; a negative cost is a net
// credit. Candidates are immutable once constructed.
type SpreadCandidate struct {
	Symbol  StockSymbol
	Expiry  string
	DTE     int
	K1      float64
	K2      float64
	K3      float64
	Width1  float64
	Width2  float64
	Cost    float64
	PriceK1 float64
	PriceK2 float64
	PriceK3 float64
	DeltaK2 float64
}

// IsSymmetric reports whether both wings have equal width, i.e. a standard
// butterfly rather than a broken wing.
func (c *SpreadCandidate) IsSymmetric() bool {
	return c.Width1 == c.Width2
}

// Credit is the net premium received to open the position. Negative for a
// debit spread.
func (c *SpreadCandidate) Credit() float64 {
	return -c.Cost
}
