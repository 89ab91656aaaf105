package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bwb-labs/option-scanner/src/models"
)

func TestLoadOptionChain(t *testing.T) {
	t.Run("loads and validates the chain", func(t *testing.T) {
		chain, err := LoadOptionChain(filepath.Join("testdata", "aapl_chain.csv"))
		assert.Nil(t, err)
		assert.Equal(t, 8, len(chain))

		first := chain[0]
		assert.Equal(t, models.StockSymbol("AAPL"), first.Symbol)
		assert.Equal(t, "2025-11-15", first.Expiry)
		assert.Equal(t, 8, first.DTE)
		assert.Equal(t, 95.0, first.Strike)
		assert.Equal(t, models.Call, first.Type)
		assert.Equal(t, 10.55, first.Mid)
		assert.Equal(t, 0.40, first.Delta)

		assert.Equal(t, models.Put, chain[7].Type)
	})

	t.Run("loaded chain feeds the pipeline", func(t *testing.T) {
		chain, err := LoadOptionChain(filepath.Join("testdata", "aapl_chain.csv"))
		assert.Nil(t, err)

		spreads := GenerateCallSpreads(chain, "AAPL", "2025-11-15")
		filtered := FilterSpreads(spreads, models.DefaultFilterParams())
		ranked := RankSpreads(filtered)

		assert.Equal(t, 35, len(spreads))
		assert.Equal(t, 7, len(ranked))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadOptionChain(filepath.Join("testdata", "does_not_exist.csv"))
		assert.NotNil(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		assert.Nil(t, os.WriteFile(path, nil, 0644))

		_, err := LoadOptionChain(path)
		assert.NotNil(t, err)
	})

	t.Run("header only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "header_only.csv")
		assert.Nil(t, os.WriteFile(path, []byte("symbol,expiry,dte,strike,type,bid,ask,mid,delta,iv\n"), 0644))

		_, err := LoadOptionChain(path)
		assert.NotNil(t, err)
	})

	t.Run("bid above ask is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad_quote.csv")
		row := "symbol,expiry,dte,strike,type,bid,ask,mid,delta,iv\nAAPL,2025-11-15,8,95,call,10.70,10.60,10.65,0.40,0.15\n"
		assert.Nil(t, os.WriteFile(path, []byte(row), 0644))

		_, err := LoadOptionChain(path)
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "bid")
	})

	t.Run("invalid option type is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad_type.csv")
		row := "symbol,expiry,dte,strike,type,bid,ask,mid,delta,iv\nAAPL,2025-11-15,8,95,future,10.50,10.60,10.55,0.40,0.15\n"
		assert.Nil(t, os.WriteFile(path, []byte(row), 0644))

		_, err := LoadOptionChain(path)
		assert.NotNil(t, err)
	})

	t.Run("mid must match the quote", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad_mid.csv")
		row := "symbol,expiry,dte,strike,type,bid,ask,mid,delta,iv\nAAPL,2025-11-15,8,95,call,10.50,10.60,11.00,0.40,0.15\n"
		assert.Nil(t, os.WriteFile(path, []byte(row), 0644))

		_, err := LoadOptionChain(path)
		assert.NotNil(t, err)
	})
}
