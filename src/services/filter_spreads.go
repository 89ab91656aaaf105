package services

import (
	log "github.com/sirupsen/logrus"

	"github.com/bwb-labs/option-scanner/src/models"
)

// FilterSpreads keeps the candidates that pass every acceptance predicate,
// preserving their original relative order.
func FilterSpreads(spreads []models.SpreadCandidate, params models.FilterParams) []models.SpreadCandidate {
	filtered := make([]models.SpreadCandidate, 0, len(spreads))
	for _, spread := range spreads {
		if passesFilters(&spread, params) {
			filtered = append(filtered, spread)
		}
	}

	log.Infof("FilterSpreads: filtered spreads from %d to %d", len(spreads), len(filtered))
	return filtered
}

func passesFilters(spread *models.SpreadCandidate, params models.FilterParams) bool {
	// A standard butterfly has equal wings; only broken wings qualify
	if spread.IsSymmetric() {
		return false
	}

	if spread.DeltaK2 < params.DeltaMin || spread.DeltaK2 > params.DeltaMax {
		return false
	}

	if params.MinDTE > 0 && spread.DTE < params.MinDTE {
		return false
	}

	if params.MaxDTE > 0 && spread.DTE > params.MaxDTE {
		return false
	}

	// Credit = -Cost, so Credit >= MinCredit means Cost <= -MinCredit. With
	// the default MinCredit of zero a break-even spread is not a credit and
	// is rejected; a negative MinCredit admits debits up to that magnitude.
	if spread.Cost > -params.MinCredit {
		return false
	}

	if params.MinCredit == 0 && spread.Cost == 0 {
		return false
	}

	return true
}
