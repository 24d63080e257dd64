package model

import "time"

// FindingType categorizes the behavior a finding describes.
type FindingType string

const (
	// FindingRecurringPayment indicates a merchant charged on a roughly monthly cycle.
	FindingRecurringPayment FindingType = "recurring_payment"
	// FindingWeekendPattern indicates weekend spending significantly above weekday spending.
	FindingWeekendPattern FindingType = "weekend_pattern"
	// FindingUnusualActivity indicates a transaction far outside the user's normal range.
	FindingUnusualActivity FindingType = "unusual_activity"
	// FindingOverspending indicates disproportionate spending, either concentrated in one
	// category or as a splurge shortly after a payday.
	FindingOverspending FindingType = "overspending"
	// FindingBudgetExceeded indicates month-to-date spend over the configured budget.
	FindingBudgetExceeded FindingType = "budget_exceeded"
	// FindingBudgetWarning indicates month-to-date spend within 20% of the budget.
	FindingBudgetWarning FindingType = "budget_warning"
	// FindingGoalAchieved indicates a savings goal reached its target.
	FindingGoalAchieved FindingType = "goal_achieved"
	// FindingGoalAtRisk indicates a goal unlikely to be met before its deadline.
	FindingGoalAtRisk FindingType = "goal_at_risk"
	// FindingUpcomingBill indicates a periodic merchant charge projected within days.
	FindingUpcomingBill FindingType = "upcoming_bill"
)

// Severity indicates how strongly a finding should be surfaced.
type Severity string

const (
	// SeverityLow indicates an informational finding.
	SeverityLow Severity = "low"
	// SeverityMedium indicates a finding worth the user's attention.
	SeverityMedium Severity = "medium"
	// SeverityHigh indicates a finding that should be acted on.
	SeverityHigh Severity = "high"
)

// Finding is a single detector output describing one observed behavior.
// Findings are produced fresh on every analysis call; they are not a
// system of record unless the orchestrator converts them into
// notifications.
type Finding struct {
	Data           FindingData `json:"data,omitempty"`
	Type           FindingType `json:"type"`
	Insight        string      `json:"insight"`
	Recommendation string      `json:"recommendation,omitempty"`
	Severity       Severity    `json:"severity,omitempty"`
	Confidence     float64     `json:"confidence"`
}

// FindingData is the closed set of structured payloads a finding can
// carry. Each detector has exactly one payload shape, so callers can
// switch over the concrete type instead of probing untyped fields.
type FindingData interface {
	findingData()
}

// RecurringPaymentData details a merchant with a monthly charge cycle.
type RecurringPaymentData struct {
	Merchant            string  `json:"merchant"`
	AverageAmount       float64 `json:"average_amount"`
	AverageIntervalDays float64 `json:"average_interval_days"`
	AnnualizedCost      float64 `json:"annualized_cost"`
	Occurrences         int     `json:"occurrences"`
}

func (RecurringPaymentData) findingData() {}

// WeekendSpikeData details elevated weekend spending.
type WeekendSpikeData struct {
	WeekendAverage  float64 `json:"weekend_average"`
	WeekdayAverage  float64 `json:"weekday_average"`
	PercentIncrease float64 `json:"percent_increase"`
}

func (WeekendSpikeData) findingData() {}

// PaydaySplurgeData details rapid spending after a large income event.
type PaydaySplurgeData struct {
	IncomeDate      time.Time `json:"income_date"`
	IncomeAmount    float64   `json:"income_amount"`
	SpentWithin48h  float64   `json:"spent_within_48h"`
	PercentOfIncome float64   `json:"percent_of_income"`
}

func (PaydaySplurgeData) findingData() {}

// CategoryConcentrationData details one category dominating total spend.
type CategoryConcentrationData struct {
	Category     string  `json:"category"`
	Share        float64 `json:"share"` // fraction of total expense volume, 0-1
	Count        int     `json:"count"`
	TotalSpent   float64 `json:"total_spent"`
	TotalExpense float64 `json:"total_expense"`
}

func (CategoryConcentrationData) findingData() {}

// UnusualSpendData details a single transaction flagged as a statistical outlier.
type UnusualSpendData struct {
	Date          time.Time `json:"date"`
	TransactionID string    `json:"transaction_id"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Mean          float64   `json:"mean"`
	StdDev        float64   `json:"std_dev"`
}

func (UnusualSpendData) findingData() {}

// BudgetData details month-to-date spend against a configured budget.
type BudgetData struct {
	Category    string  `json:"category"`
	Spent       float64 `json:"spent"`
	Budget      float64 `json:"budget"`
	PercentOver float64 `json:"percent_over"`
}

func (BudgetData) findingData() {}

// GoalData details progress toward a savings goal.
type GoalData struct {
	GoalID              string  `json:"goal_id"`
	Title               string  `json:"title"`
	Progress            float64 `json:"progress"` // percent, 0-100+
	DaysUntilDeadline   int     `json:"days_until_deadline,omitempty"`
	RequiredMonthlyRate float64 `json:"required_monthly_rate,omitempty"`
}

func (GoalData) findingData() {}

// UpcomingBillData details a projected periodic charge.
type UpcomingBillData struct {
	ExpectedDate        time.Time `json:"expected_date"`
	Merchant            string    `json:"merchant"`
	AverageAmount       float64   `json:"average_amount"`
	AverageIntervalDays float64   `json:"average_interval_days"`
	Occurrences         int       `json:"occurrences"`
}

func (UpcomingBillData) findingData() {}
