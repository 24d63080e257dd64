// Package server exposes the analytics engine over HTTP.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/finpulse/finpulse/internal/analysis"
	"github.com/finpulse/finpulse/internal/model"
)

// NotificationReader is the slice of storage the notification endpoints
// need.
type NotificationReader interface {
	GetNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64, read bool) error
}

// NewRouter wires the API routes.
func NewRouter(engine *analysis.Engine, notifications NotificationReader) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/users/{user_id}", func(r chi.Router) {
			r.Get("/insights", GetInsights(engine))
			r.Post("/checks", RunChecks(engine))
			r.Post("/summary", RunWeeklySummary(engine))
			r.Get("/notifications", GetNotifications(notifications))
		})
		r.Put("/notifications/{notification_id}/read", MarkNotificationRead(notifications))
	})

	return r
}
