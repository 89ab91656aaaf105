package services

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bwb-labs/option-scanner/src/models"
)

func LoadScanConfig(path string) (*models.ScanConfigYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadScanConfig: failed to read %s: %w", path, err)
	}

	var config models.ScanConfigYAML
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("LoadScanConfig: failed to unmarshal %s: %w", path, err)
	}

	return &config, nil
}
