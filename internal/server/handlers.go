package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/finpulse/finpulse/internal/analysis"
	"github.com/finpulse/finpulse/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// GetInsights runs the on-demand pattern analysis. A user with too few
// transactions gets a 200 with an empty pattern list and a message,
// never an error status.
func GetInsights(engine *analysis.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user_id")

		result, err := engine.AnalyzePatterns(r.Context(), userID)
		if err != nil {
			slog.Error("Failed to analyze patterns", "user_id", userID, "error", err)
			http.Error(w, "failed to analyze patterns", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// RunChecks triggers the throttled notification run. A throttled call
// returns 200 with skipped set.
func RunChecks(engine *analysis.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user_id")

		result, err := engine.RunChecks(r.Context(), userID)
		if err != nil {
			slog.Error("Notification checks failed", "user_id", userID, "error", err)
			http.Error(w, "notification checks failed", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// RunWeeklySummary writes the weekly summary notification.
func RunWeeklySummary(engine *analysis.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user_id")

		notification, err := engine.WeeklySummary(r.Context(), userID)
		if err != nil {
			slog.Error("Weekly summary failed", "user_id", userID, "error", err)
			http.Error(w, "weekly summary failed", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":      true,
			"notification": notification,
		})
	}
}

// GetNotifications lists a user's notifications. Supports ?unread=true
// and ?limit=N.
func GetNotifications(store NotificationReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user_id")
		unreadOnly := r.URL.Query().Get("unread") == "true"

		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 0 {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		notifications, err := store.GetNotifications(r.Context(), userID, unreadOnly, limit)
		if err != nil {
			slog.Error("Failed to list notifications", "user_id", userID, "error", err)
			http.Error(w, "failed to list notifications", http.StatusInternalServerError)
			return
		}
		if notifications == nil {
			notifications = []model.Notification{}
		}

		writeJSON(w, http.StatusOK, map[string]any{"notifications": notifications})
	}
}

// MarkNotificationRead toggles the read flag. The body may carry
// {"read": false} to mark a notification unread again; the default is
// marking it read.
func MarkNotificationRead(store NotificationReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "notification_id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "invalid notification id", http.StatusBadRequest)
			return
		}

		req := struct {
			Read *bool `json:"read"`
		}{}
		if r.Body != nil && r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid request", http.StatusBadRequest)
				return
			}
		}
		read := true
		if req.Read != nil {
			read = *req.Read
		}

		if err := store.MarkNotificationRead(r.Context(), id, read); err != nil {
			slog.Error("Failed to mark notification", "notification_id", id, "error", err)
			http.Error(w, "failed to update notification", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}
