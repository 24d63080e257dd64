package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("FINPULSE_TEST_DIR", "state")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"tilde slash", "~/data/app.db", filepath.Join(home, "data/app.db")},
		{"bare tilde", "~", home},
		{"plain path", "/var/lib/app.db", "/var/lib/app.db"},
		{"env var", "/var/$FINPULSE_TEST_DIR/app.db", "/var/state/app.db"},
		{"tilde then env var", "~/$FINPULSE_TEST_DIR/app.db", filepath.Join(home, "state/app.db")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestLoadAnalysisDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadAnalysis()
	require.NoError(t, err)
	assert.Empty(t, cfg.Budgets)
	assert.Equal(t, DefaultExcludedCategories, cfg.ExcludedCategories)
}

func TestLoadAnalysisFromConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("budgets", map[string]any{"food": 1000.0, "transport": 400.0})
	viper.Set("analysis.excluded_categories", []string{"rent"})

	cfg, err := LoadAnalysis()
	require.NoError(t, err)
	assert.Equal(t, 1000.0, cfg.Budgets["food"])
	assert.Equal(t, 400.0, cfg.Budgets["transport"])
	assert.Equal(t, []string{"rent"}, cfg.ExcludedCategories)
}

func TestLoadAnalysisRejectsNonPositiveBudget(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("budgets", map[string]any{"food": -5.0})

	_, err := LoadAnalysis()
	assert.Error(t, err)
}
