package services

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/bwb-labs/option-scanner/src/models"
)

type ScanSummary struct {
	Total        int
	MeanCredit   float64
	MedianCredit float64
	BestScore    models.Score
}

// SummarizeScan computes credit distribution stats over the ranked output.
// An empty scan returns a zero summary.
func SummarizeScan(ranked models.RankedSpreads) (ScanSummary, error) {
	if len(ranked) == 0 {
		return ScanSummary{}, nil
	}

	credits := make([]float64, len(ranked))
	for i, spread := range ranked {
		credits[i] = spread.Credit
	}

	mean, err := stats.Mean(credits)
	if err != nil {
		return ScanSummary{}, fmt.Errorf("SummarizeScan: failed to calculate mean: %v", err)
	}

	median, err := stats.Median(credits)
	if err != nil {
		return ScanSummary{}, fmt.Errorf("SummarizeScan: failed to calculate median: %v", err)
	}

	return ScanSummary{
		Total:        len(ranked),
		MeanCredit:   mean,
		MedianCredit: median,
		BestScore:    ranked[0].Score,
	}, nil
}
