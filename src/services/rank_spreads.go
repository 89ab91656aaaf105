package services

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/bwb-labs/option-scanner/src/models"
	"github.com/bwb-labs/option-scanner/src/utils"
)

// RankSpreads projects filtered candidates into ranked spreads sorted by
// reward-to-risk score, best first. Equal scores keep their candidate order.
//
// MaxProfit assumes the underlying settles exactly at K2 at expiration;
// MaxLoss assumes it settles at or above K3 and is clipped at zero. A zero
// MaxLoss means the position cannot lose, so its score is unbounded and
// sorts ahead of every finite score.
func RankSpreads(spreads []models.SpreadCandidate) models.RankedSpreads {
	ranked := make(models.RankedSpreads, 0, len(spreads))
	for _, spread := range spreads {
		credit := utils.RoundCents(spread.Credit())
		maxProfit := utils.RoundCents(spread.Width1 + credit)

		maxLoss := utils.RoundCents(spread.Width2 - spread.Width1 - credit)
		if maxLoss < 0 {
			maxLoss = 0
		}

		score := models.NewUnboundedScore()
		if maxLoss > 0 {
			score = models.NewFiniteScore(maxProfit / maxLoss)
		}

		ranked = append(ranked, models.RankedSpread{
			Symbol:    spread.Symbol,
			Expiry:    spread.Expiry,
			K1:        spread.K1,
			K2:        spread.K2,
			K3:        spread.K3,
			Credit:    credit,
			MaxProfit: maxProfit,
			MaxLoss:   maxLoss,
			Score:     score,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.GreaterThan(ranked[j].Score)
	})

	log.Infof("RankSpreads: ranked %d spreads", len(ranked))
	return ranked
}
