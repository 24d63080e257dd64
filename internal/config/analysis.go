package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/finpulse/finpulse/internal/common"
)

// Analysis holds the tunable inputs to the analytics engine: the
// monthly budget table and the categories excluded from concentration
// findings. Both are deployment configuration, not user data, and are
// injected into the engine rather than read from globals so tests can
// swap them freely.
type Analysis struct {
	Budgets            map[string]float64
	ExcludedCategories []string
}

// DefaultExcludedCategories are spending categories that legitimately
// dominate a budget and should not trigger concentration findings.
var DefaultExcludedCategories = []string{"rent", "bills"}

// LoadAnalysis reads the analysis configuration from viper.
//
// Expected config shape:
//
//	budgets:
//	  food: 1000
//	  transport: 400
//	analysis:
//	  excluded_categories: [rent, bills]
func LoadAnalysis() (Analysis, error) {
	cfg := Analysis{
		Budgets:            make(map[string]float64),
		ExcludedCategories: DefaultExcludedCategories,
	}

	if viper.IsSet("budgets") {
		if err := viper.UnmarshalKey("budgets", &cfg.Budgets); err != nil {
			return cfg, fmt.Errorf("%w: budgets: %v", common.ErrInvalidConfig, err)
		}
		for category, limit := range cfg.Budgets {
			if limit <= 0 {
				return cfg, fmt.Errorf("%w: budget for %q must be positive", common.ErrInvalidConfig, category)
			}
		}
	}

	if viper.IsSet("analysis.excluded_categories") {
		cfg.ExcludedCategories = viper.GetStringSlice("analysis.excluded_categories")
	}

	return cfg, nil
}
