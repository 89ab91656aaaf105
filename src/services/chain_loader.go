package services

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/bwb-labs/option-scanner/src/models"
)

// LoadOptionChain reads an options chain csv into a typed, validated chain.
// Expected columns: symbol,expiry,dte,strike,type,bid,ask,mid,delta,iv.
// Malformed rows fail the whole load, so the scan pipeline only ever sees a
// validated schema.
func LoadOptionChain(path string) (models.OptionChain, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("LoadOptionChain: failed to stat %s: %w", path, err)
	}

	if info.Size() == 0 {
		return nil, fmt.Errorf("LoadOptionChain: file is empty: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadOptionChain: failed to open %s: %w", path, err)
	}
	defer f.Close()

	var dtos []*models.OptionChainRowDTO
	if err := gocsv.UnmarshalFile(f, &dtos); err != nil {
		return nil, fmt.Errorf("LoadOptionChain: failed to unmarshal %s: %w", path, err)
	}

	if len(dtos) == 0 {
		return nil, fmt.Errorf("LoadOptionChain: no rows found in %s", path)
	}

	chain := make(models.OptionChain, 0, len(dtos))
	for i, dto := range dtos {
		row, err := dto.ToModel()
		if err != nil {
			return nil, fmt.Errorf("LoadOptionChain: row %d: %w", i+1, err)
		}

		chain = append(chain, *row)
	}

	log.Infof("Successfully loaded %d rows from %s", len(chain), path)
	return chain, nil
}
