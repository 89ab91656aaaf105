package models

import (
	"fmt"
	"strings"
)

type ScanConfigYAML struct {
	Scans []ScanYAML `yaml:"scans"`
}

type ScanYAML struct {
	Symbol    string   `yaml:"symbol"`
	Expiry    string   `yaml:"expiry"`
	DeltaMin  *float64 `yaml:"delta_min"`
	DeltaMax  *float64 `yaml:"delta_max"`
	MinCredit *float64 `yaml:"min_credit"`
	MinDTE    *int     `yaml:"min_dte"`
	MaxDTE    *int     `yaml:"max_dte"`
}

func (c *ScanConfigYAML) GetScan(symbol StockSymbol) (*ScanYAML, error) {
	sym1 := strings.ToLower(string(symbol))
	for _, scan := range c.Scans {
		sym2 := strings.ToLower(scan.Symbol)
		if sym1 == sym2 {
			return &scan, nil
		}
	}

	return nil, fmt.Errorf("ScanConfigYAML: scan not found")
}

// ApplyTo overlays the config values that are present onto params.
func (s *ScanYAML) ApplyTo(params FilterParams) FilterParams {
	if s.DeltaMin != nil {
		params.DeltaMin = *s.DeltaMin
	}

	if s.DeltaMax != nil {
		params.DeltaMax = *s.DeltaMax
	}

	if s.MinCredit != nil {
		params.MinCredit = *s.MinCredit
	}

	if s.MinDTE != nil {
		params.MinDTE = *s.MinDTE
	}

	if s.MaxDTE != nil {
		params.MaxDTE = *s.MaxDTE
	}

	return params
}
