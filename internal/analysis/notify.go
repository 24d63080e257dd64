package analysis

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/finpulse/finpulse/internal/detect"
	"github.com/finpulse/finpulse/internal/model"
)

// notificationType maps a finding type to its display class. Budget
// breaches and goals slipping away are errors, warnings cover the
// "approaching a limit" findings, and an achieved goal is the one
// success case.
func notificationType(findingType model.FindingType) model.NotificationType {
	switch findingType {
	case model.FindingGoalAchieved:
		return model.NotificationSuccess
	case model.FindingBudgetExceeded, model.FindingGoalAtRisk:
		return model.NotificationError
	case model.FindingBudgetWarning, model.FindingUnusualActivity:
		return model.NotificationWarning
	default:
		return model.NotificationInfo
	}
}

func notificationTitle(findingType model.FindingType) string {
	switch findingType {
	case model.FindingBudgetExceeded:
		return "Budget Exceeded"
	case model.FindingBudgetWarning:
		return "Budget Warning"
	case model.FindingGoalAchieved:
		return "Goal Achieved"
	case model.FindingGoalAtRisk:
		return "Goal At Risk"
	case model.FindingUnusualActivity:
		return "Unusual Spending"
	case model.FindingUpcomingBill:
		return "Upcoming Bill"
	case model.FindingRecurringPayment:
		return "Recurring Payment"
	case model.FindingWeekendPattern:
		return "Weekend Spending"
	case model.FindingOverspending:
		return "Spending Pattern"
	default:
		return "Insight"
	}
}

// notificationFromFinding converts one finding into a notification
// record, carrying the structured payload in the Data field.
func notificationFromFinding(userID string, finding model.Finding, at time.Time) (model.Notification, error) {
	message := finding.Insight
	if finding.Recommendation != "" {
		message = fmt.Sprintf("%s %s", finding.Insight, finding.Recommendation)
	}

	data := ""
	if finding.Data != nil {
		payload, err := json.Marshal(finding.Data)
		if err != nil {
			return model.Notification{}, fmt.Errorf("failed to serialize finding data: %w", err)
		}
		data = string(payload)
	}

	return model.Notification{
		UserID:    userID,
		Type:      notificationType(finding.Type),
		Title:     notificationTitle(finding.Type),
		Message:   message,
		Data:      data,
		CreatedAt: at,
	}, nil
}

// weeklyNotification builds the single informational notification the
// weekly summary path always produces. With no transactions in the
// window the message nudges the user to log cash spending instead.
func weeklyNotification(userID string, summary detect.WeeklySummary, at time.Time) (model.Notification, error) {
	payload, err := json.Marshal(summary)
	if err != nil {
		return model.Notification{}, fmt.Errorf("failed to serialize weekly summary: %w", err)
	}

	message := fmt.Sprintf("This week: %.2f in, %.2f out, net %.2f.", summary.Income, summary.Expenses, summary.Net)
	if summary.TopCategory != "" {
		message = fmt.Sprintf("%s Top category: %s (%.2f).", message, summary.TopCategory, summary.TopCategoryAmount)
	}
	if summary.Count == 0 {
		message = "No transactions recorded this week. Log your cash spending to keep your insights accurate."
	}

	return model.Notification{
		UserID:    userID,
		Type:      model.NotificationInfo,
		Title:     "Weekly Summary",
		Message:   message,
		Data:      string(payload),
		CreatedAt: at,
	}, nil
}
