package detect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpulse/finpulse/internal/model"
)

func TestBudgetStatus(t *testing.T) {
	now := time.Date(2024, 6, 19, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	budgets := map[string]float64{"food": 1000, "transport": 500}

	tests := []struct {
		name     string
		wantType model.FindingType
		txns     []model.Transaction
		wantFire bool
	}{
		{
			name:     "over budget fires exceeded",
			txns:     []model.Transaction{expenseAt("GROCERIES", "food", 1200, thisMonth)},
			wantFire: true,
			wantType: model.FindingBudgetExceeded,
		},
		{
			name:     "within 20 percent of the cap fires a warning",
			txns:     []model.Transaction{expenseAt("GROCERIES", "food", 850, thisMonth)},
			wantFire: true,
			wantType: model.FindingBudgetWarning,
		},
		{
			name:     "exactly at budget produces no finding at all",
			txns:     []model.Transaction{expenseAt("GROCERIES", "food", 1000, thisMonth)},
			wantFire: false,
		},
		{
			name:     "comfortably under budget is silent",
			txns:     []model.Transaction{expenseAt("GROCERIES", "food", 700, thisMonth)},
			wantFire: false,
		},
		{
			name:     "categories without a configured budget are skipped",
			txns:     []model.Transaction{expenseAt("CASINO", "gambling", 99999, thisMonth)},
			wantFire: false,
		},
		{
			name:     "last month's spending does not count",
			txns:     []model.Transaction{expenseAt("GROCERIES", "food", 1200, thisMonth.AddDate(0, -1, 0))},
			wantFire: false,
		},
		{
			name:     "income in a budgeted category does not count as spend",
			txns:     []model.Transaction{testTxn(model.TypeIncome, "REIMBURSEMENT", "food", 1200, thisMonth)},
			wantFire: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := BudgetStatus(tt.txns, budgets, now)
			if !tt.wantFire {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantType, findings[0].Type)
		})
	}
}

func TestBudgetStatus_PercentOver(t *testing.T) {
	now := time.Date(2024, 6, 19, 12, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		expenseAt("GROCERIES", "food", 1250, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)),
	}

	findings := BudgetStatus(txns, map[string]float64{"food": 1000}, now)
	require.Len(t, findings, 1)

	data, ok := findings[0].Data.(model.BudgetData)
	require.True(t, ok)
	assert.InDelta(t, 1250, data.Spent, 0.0001)
	assert.InDelta(t, 1000, data.Budget, 0.0001)
	assert.InDelta(t, 25, data.PercentOver, 0.0001)
}

func TestBudgetStatus_MonthBoundary(t *testing.T) {
	now := time.Date(2024, 6, 19, 12, 0, 0, 0, time.UTC)
	// Midnight on the first of the month is inclusive.
	txns := []model.Transaction{
		expenseAt("GROCERIES", "food", 1200, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
	}

	findings := BudgetStatus(txns, map[string]float64{"food": 1000}, now)
	assert.Len(t, findings, 1)
}
