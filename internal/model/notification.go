package model

import "time"

// NotificationType is the display class of a notification.
type NotificationType string

const (
	// NotificationInfo is an informational notification.
	NotificationInfo NotificationType = "info"
	// NotificationWarning flags something approaching a limit.
	NotificationWarning NotificationType = "warning"
	// NotificationSuccess celebrates a positive event.
	NotificationSuccess NotificationType = "success"
	// NotificationError flags a limit that has been crossed.
	NotificationError NotificationType = "error"
)

// Notification is a durable record created by the analysis orchestrator.
// The engine only appends notifications; the read flag is toggled by the
// UI layer and records are never deleted here.
type Notification struct {
	CreatedAt time.Time        `json:"created_at"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Data      string           `json:"data,omitempty"` // serialized FindingData payload
	ID        int64            `json:"id"`
	Read      bool             `json:"read"`
}
