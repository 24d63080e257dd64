package model

import "time"

// Goal is a savings goal. Goals are read-only inputs to the analytics
// engine; progress updates happen elsewhere.
type Goal struct {
	CreatedAt     time.Time
	Deadline      *time.Time
	ID            string
	UserID        string
	Title         string
	TargetAmount  float64
	CurrentAmount float64
	IsCompleted   bool
}

// Progress returns completion as a percentage of the target amount.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}
