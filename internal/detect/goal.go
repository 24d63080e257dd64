package detect

import (
	"fmt"
	"math"
	"time"

	"github.com/finpulse/finpulse/internal/model"
)

// GoalProgress evaluates incomplete savings goals. A goal at or over
// its target is achieved regardless of any deadline. A goal under 50%
// progress with 30 days or less remaining is at risk, reported with the
// monthly savings rate still required. Goals that are on track, or that
// have no deadline and aren't achieved, stay silent.
func GoalProgress(goals []model.Goal, now time.Time) []model.Finding {
	var findings []model.Finding
	for i := range goals {
		goal := &goals[i]
		if goal.IsCompleted {
			continue
		}

		progress := goal.Progress()
		if progress >= 100 {
			findings = append(findings, model.Finding{
				Type: model.FindingGoalAchieved,
				Insight: fmt.Sprintf("You reached your goal %q — %.2f saved of a %.2f target.",
					goal.Title, goal.CurrentAmount, goal.TargetAmount),
				Recommendation: "Mark it complete and set your next one.",
				Severity:       model.SeverityLow,
				Confidence:     1,
				Data: model.GoalData{
					GoalID:   goal.ID,
					Title:    goal.Title,
					Progress: progress,
				},
			})
			continue
		}

		if goal.Deadline == nil {
			continue
		}

		daysLeft := int(math.Ceil(daysApart(now, *goal.Deadline)))
		if daysLeft > 30 || progress >= 50 {
			continue
		}

		remaining := goal.TargetAmount - goal.CurrentAmount
		required := remaining
		if daysLeft > 0 {
			required = remaining / (float64(daysLeft) / 30)
		}

		findings = append(findings, model.Finding{
			Type: model.FindingGoalAtRisk,
			Insight: fmt.Sprintf("%q is at %.0f%% with %d days left. You'd need to save %.2f per month to make it.",
				goal.Title, progress, daysLeft, required),
			Recommendation: "Consider extending the deadline or adjusting the target.",
			Severity:       model.SeverityHigh,
			Confidence:     1,
			Data: model.GoalData{
				GoalID:              goal.ID,
				Title:               goal.Title,
				Progress:            progress,
				DaysUntilDeadline:   daysLeft,
				RequiredMonthlyRate: required,
			},
		})
	}

	return findings
}
