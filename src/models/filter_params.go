package models

// FilterParams are the acceptance criteria applied to generated spreads.
// MinCredit is the smallest net credit accepted; a negative value admits
// debit spreads up to that magnitude. MinDTE/MaxDTE are optional, a zero
// value disables that side of the window.
type FilterParams struct {
	DeltaMin  float64
	DeltaMax  float64
	MinCredit float64
	MinDTE    int
	MaxDTE    int
}

func DefaultFilterParams() FilterParams {
	return FilterParams{
		DeltaMin:  0.20,
		DeltaMax:  0.35,
		MinCredit: 0.0,
	}
}
