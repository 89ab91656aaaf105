package services

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/bwb-labs/option-scanner/src/models"
	"github.com/bwb-labs/option-scanner/src/utils"
)

// GenerateCallSpreads enumerates every Broken Wing Butterfly call spread for
// one (symbol, expiry) slice of the chain: long 1 call at K1, short 2 calls
// at K2, long 1 call at K3, over all C(n,3) strike triples K1 < K2 < K3.
//
// Candidates come out ordered by K1 ascending, then K2, then K3 — downstream
// stages rely on that ordering. Fewer than 3 distinct call strikes yields an
// empty slice, not an error.
func GenerateCallSpreads(chain models.OptionChain, symbol models.StockSymbol, expiry string) []models.SpreadCandidate {
	calls := chain.Calls(symbol, expiry)
	if len(calls) == 0 {
		log.Warnf("GenerateCallSpreads: no call options found for %s expiring on %s", symbol, expiry)
		return nil
	}

	// Distinct strikes with a mid/delta lookup. The first row seen for a
	// strike wins, matching the chain's own ordering.
	strikeRows := make(map[float64]models.OptionChainRow, len(calls))
	strikes := make([]float64, 0, len(calls))
	for _, row := range calls {
		if _, found := strikeRows[row.Strike]; found {
			continue
		}

		strikeRows[row.Strike] = row
		strikes = append(strikes, row.Strike)
	}

	sort.Float64s(strikes)

	if len(strikes) < 3 {
		log.Warnf("GenerateCallSpreads: need at least 3 distinct call strikes for %s expiring on %s, found %d", symbol, expiry, len(strikes))
		return nil
	}

	// Expiry is the same for every row in the slice
	dte := calls[0].DTE

	var spreads []models.SpreadCandidate
	for i := 0; i < len(strikes)-2; i++ {
		for j := i + 1; j < len(strikes)-1; j++ {
			for k := j + 1; k < len(strikes); k++ {
				k1, k2, k3 := strikes[i], strikes[j], strikes[k]

				p1 := strikeRows[k1].Mid
				p2 := strikeRows[k2].Mid
				p3 := strikeRows[k3].Mid

				spreads = append(spreads, models.SpreadCandidate{
					Symbol:  symbol,
					Expiry:  expiry,
					DTE:     dte,
					K1:      k1,
					K2:      k2,
					K3:      k3,
					Width1:  k2 - k1,
					Width2:  k3 - k2,
					Cost:    utils.RoundCents(p1 - 2*p2 + p3),
					PriceK1: p1,
					PriceK2: p2,
					PriceK3: p3,
					DeltaK2: strikeRows[k2].Delta,
				})
			}
		}
	}

	log.Infof("GenerateCallSpreads: generated %d spreads for %s on %s", len(spreads), symbol, expiry)
	return spreads
}
