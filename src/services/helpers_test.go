package services

import "github.com/bwb-labs/option-scanner/src/models"

// newTestChain mirrors the AAPL 2025-11-15 reference chain, plus rows that a
// call-side scan of that slice must ignore.
func newTestChain() models.OptionChain {
	strikes := []float64{95, 100, 105, 110, 115, 120, 125}
	bids := []float64{10.50, 7.20, 4.80, 3.10, 1.90, 1.10, 0.60}
	asks := []float64{10.60, 7.30, 4.90, 3.20, 2.00, 1.20, 0.70}
	mids := []float64{10.55, 7.25, 4.85, 3.15, 1.95, 1.15, 0.65}
	deltas := []float64{0.40, 0.30, 0.20, 0.15, 0.10, 0.08, 0.05}

	var chain models.OptionChain
	for i, strike := range strikes {
		chain = append(chain, models.OptionChainRow{
			Symbol: "AAPL",
			Expiry: "2025-11-15",
			DTE:    8,
			Strike: strike,
			Type:   models.Call,
			Bid:    bids[i],
			Ask:    asks[i],
			Mid:    mids[i],
			Delta:  deltas[i],
			IV:     0.15,
		})
	}

	chain = append(chain,
		models.OptionChainRow{Symbol: "AAPL", Expiry: "2025-11-15", DTE: 8, Strike: 100, Type: models.Put, Bid: 1.10, Ask: 1.20, Mid: 1.15, Delta: 0.25, IV: 0.18},
		models.OptionChainRow{Symbol: "MSFT", Expiry: "2025-11-15", DTE: 8, Strike: 100, Type: models.Call, Bid: 2.10, Ask: 2.20, Mid: 2.15, Delta: 0.30, IV: 0.22},
		models.OptionChainRow{Symbol: "AAPL", Expiry: "2025-12-19", DTE: 42, Strike: 100, Type: models.Call, Bid: 9.00, Ask: 9.10, Mid: 9.05, Delta: 0.55, IV: 0.21},
	)

	return chain
}

func newCandidate(k1, k2, k3, cost, deltaK2 float64) models.SpreadCandidate {
	return models.SpreadCandidate{
		Symbol:  "AAPL",
		Expiry:  "2025-11-15",
		DTE:     8,
		K1:      k1,
		K2:      k2,
		K3:      k3,
		Width1:  k2 - k1,
		Width2:  k3 - k2,
		Cost:    cost,
		DeltaK2: deltaK2,
	}
}
