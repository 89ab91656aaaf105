package models

import (
	"fmt"
	"math"
	"strings"
)

type OptionChainRowDTO struct {
	Symbol string  `csv:"symbol"`
	Expiry string  `csv:"expiry"`
	DTE    int     `csv:"dte"`
	Strike float64 `csv:"strike"`
	Type   string  `csv:"type"`
	Bid    float64 `csv:"bid"`
	Ask    float64 `csv:"ask"`
	Mid    float64 `csv:"mid"`
	Delta  float64 `csv:"delta"`
	IV     float64 `csv:"iv"`
}

// midTolerance allows 1 cent of rounding slack between mid and (bid+ask)/2
const midTolerance = 0.01

func (dto *OptionChainRowDTO) ToModel() (*OptionChainRow, error) {
	optionType := OptionType(strings.ToLower(strings.TrimSpace(dto.Type)))
	if err := optionType.Validate(); err != nil {
		return nil, fmt.Errorf("OptionChainRowDTO: ToModel: %w", err)
	}

	if dto.Strike <= 0 {
		return nil, fmt.Errorf("OptionChainRowDTO: ToModel: strike must be positive, found %v", dto.Strike)
	}

	if dto.Bid < 0 || dto.Ask < 0 || dto.Mid < 0 {
		return nil, fmt.Errorf("OptionChainRowDTO: ToModel: prices must be non-negative, found bid=%v ask=%v mid=%v", dto.Bid, dto.Ask, dto.Mid)
	}

	if dto.Bid > dto.Ask {
		return nil, fmt.Errorf("OptionChainRowDTO: ToModel: bid %v cannot exceed ask %v", dto.Bid, dto.Ask)
	}

	if math.Abs(dto.Mid-(dto.Bid+dto.Ask)/2) > midTolerance {
		return nil, fmt.Errorf("OptionChainRowDTO: ToModel: mid %v is not (bid + ask) / 2 of bid=%v ask=%v", dto.Mid, dto.Bid, dto.Ask)
	}

	if dto.Delta < 0 || dto.Delta > 1 {
		return nil, fmt.Errorf("OptionChainRowDTO: ToModel: delta must be between 0 and 1, found %v", dto.Delta)
	}

	if dto.DTE < 0 {
		return nil, fmt.Errorf("OptionChainRowDTO: ToModel: dte must be non-negative, found %v", dto.DTE)
	}

	return &OptionChainRow{
		Symbol: StockSymbol(strings.ToUpper(strings.TrimSpace(dto.Symbol))),
		Expiry: strings.TrimSpace(dto.Expiry),
		DTE:    dto.DTE,
		Strike: dto.Strike,
		Type:   optionType,
		Bid:    dto.Bid,
		Ask:    dto.Ask,
		Mid:    dto.Mid,
		Delta:  dto.Delta,
		IV:     dto.IV,
	}, nil
}
