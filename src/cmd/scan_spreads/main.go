package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bwb-labs/option-scanner/src/cmd/scan_spreads/run"
	"github.com/bwb-labs/option-scanner/src/models"
	"github.com/bwb-labs/option-scanner/src/services"
	"github.com/bwb-labs/option-scanner/src/utils"
)

var scanCmd = &cobra.Command{
	Use:   "go run src/cmd/scan_spreads/main.go --csv data/aapl_chain.csv --symbol AAPL --expiry 2025-11-15",
	Short: "Scan an options chain csv for Broken Wing Butterfly call spread candidates",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		if err := utils.InitEnvironmentVariables(".", goEnv); err != nil {
			log.Fatalf("error initializing environment variables: %v", err)
		}

		csvPath, err := cmd.Flags().GetString("csv")
		if err != nil {
			log.Fatalf("error getting csv: %v", err)
		}

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			log.Fatalf("error getting symbol: %v", err)
		}

		expiry, err := cmd.Flags().GetString("expiry")
		if err != nil {
			log.Fatalf("error getting expiry: %v", err)
		}

		deltaMin, err := cmd.Flags().GetFloat64("delta-min")
		if err != nil {
			log.Fatalf("error getting delta-min: %v", err)
		}

		deltaMax, err := cmd.Flags().GetFloat64("delta-max")
		if err != nil {
			log.Fatalf("error getting delta-max: %v", err)
		}

		minCredit, err := cmd.Flags().GetFloat64("min-credit")
		if err != nil {
			log.Fatalf("error getting min-credit: %v", err)
		}

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		params := models.DefaultFilterParams()

		if configPath != "" {
			config, err := services.LoadScanConfig(configPath)
			if err != nil {
				log.Fatalf("error loading scan config: %v", err)
			}

			if scan, err := config.GetScan(models.StockSymbol(symbol)); err == nil {
				params = scan.ApplyTo(params)
			}
		}

		// Explicit flags override the config file
		if cmd.Flags().Changed("delta-min") {
			params.DeltaMin = deltaMin
		}

		if cmd.Flags().Changed("delta-max") {
			params.DeltaMax = deltaMax
		}

		if cmd.Flags().Changed("min-credit") {
			params.MinCredit = minCredit
		}

		result, err := run.Run(run.RunArgs{
			CsvPath: csvPath,
			Symbol:  models.StockSymbol(symbol),
			Expiry:  expiry,
			Params:  params,
		})
		if err != nil {
			log.Fatalf("scan failed: %v", err)
		}

		if len(result.Ranked) == 0 {
			log.Warn("no spreads passed the filters")
			return
		}

		fmt.Println(result.Ranked.String())
		fmt.Printf("spreads: %d | mean credit: $%.2f | median credit: $%.2f | best score: %s\n",
			result.Summary.Total, result.Summary.MeanCredit, result.Summary.MedianCredit, result.Summary.BestScore)
	},
}

func main() {
	scanCmd.PersistentFlags().String("csv", "", "Path to the options chain csv file")
	scanCmd.PersistentFlags().String("symbol", "", "Underlying symbol to scan")
	scanCmd.PersistentFlags().String("expiry", "", "Expiration date to scan, e.g. 2025-11-15")
	scanCmd.PersistentFlags().Float64("delta-min", 0.20, "Minimum delta for the short strike")
	scanCmd.PersistentFlags().Float64("delta-max", 0.35, "Maximum delta for the short strike")
	scanCmd.PersistentFlags().Float64("min-credit", 0.0, "Minimum net credit required to open the position")
	scanCmd.PersistentFlags().String("config", "", "Optional yaml file with per-symbol scan parameters")
	scanCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in")

	scanCmd.MarkPersistentFlagRequired("csv")
	scanCmd.MarkPersistentFlagRequired("symbol")
	scanCmd.MarkPersistentFlagRequired("expiry")

	if err := scanCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
