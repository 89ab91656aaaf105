package run

import (
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/bwb-labs/option-scanner/src/models"
	"github.com/bwb-labs/option-scanner/src/services"
)

type RunArgs struct {
	CsvPath string
	Symbol  models.StockSymbol
	Expiry  string
	Params  models.FilterParams
}

type RunResult struct {
	Ranked  models.RankedSpreads
	Summary services.ScanSummary
}

func Run(args RunArgs) (RunResult, error) {
	scanID := uuid.New()

	log.WithFields(log.Fields{
		"scanID": scanID.String(),
		"symbol": args.Symbol,
		"expiry": args.Expiry,
	}).Info("starting bwb call spread scan")

	chain, err := services.LoadOptionChain(args.CsvPath)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: failed to load option chain: %w", err)
	}

	spreads := services.GenerateCallSpreads(chain, args.Symbol, args.Expiry)
	filtered := services.FilterSpreads(spreads, args.Params)
	ranked := services.RankSpreads(filtered)

	summary, err := services.SummarizeScan(ranked)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: failed to summarize scan: %w", err)
	}

	log.WithFields(log.Fields{
		"scanID":  scanID.String(),
		"spreads": len(ranked),
	}).Info("bwb call spread scan complete")

	return RunResult{Ranked: ranked, Summary: summary}, nil
}
