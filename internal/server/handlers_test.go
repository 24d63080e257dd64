package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpulse/finpulse/internal/analysis"
	"github.com/finpulse/finpulse/internal/model"
	"github.com/finpulse/finpulse/internal/server"
	"github.com/finpulse/finpulse/internal/storage"
	"github.com/finpulse/finpulse/internal/testutil"
)

var testNow = time.Date(2024, 6, 19, 12, 0, 0, 0, time.UTC) // a Wednesday

func setupServer(t *testing.T, budgets map[string]float64) (*httptest.Server, *storage.SQLiteStorage) {
	t.Helper()

	store := testutil.SetupTestDB(t)

	engine, err := analysis.NewEngine(analysis.Deps{
		Transactions:  store,
		Goals:         store,
		Notifications: store,
		Runs:          store,
	}, analysis.Config{
		Now:     func() time.Time { return testNow },
		Budgets: budgets,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(server.NewRouter(engine, store))
	t.Cleanup(ts.Close)

	return ts, store
}

func seedExpense(t *testing.T, store *storage.SQLiteStorage, id, category, description string, amount float64, date time.Time) {
	t.Helper()

	txn := model.Transaction{
		ID:          id,
		UserID:      "user-1",
		Type:        model.TypeExpense,
		Category:    category,
		Description: description,
		Amount:      amount,
		CreatedAt:   date,
	}
	txn.Hash = txn.GenerateHash()
	require.NoError(t, store.SaveTransactions(context.Background(), []model.Transaction{txn}))
}

func decodeBody(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func TestHealth(t *testing.T) {
	ts, _ := setupServer(t, nil)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetInsightsNotEnoughData(t *testing.T) {
	ts, _ := setupServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/users/user-1/insights")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result analysis.InsightsResult
	decodeBody(t, resp, &result)
	assert.Equal(t, "not enough data", result.Message)
	assert.Empty(t, result.Patterns)
}

func TestGetInsightsWithPatterns(t *testing.T) {
	ts, store := setupServer(t, nil)

	// Three subscription charges on a monthly cycle plus weekday filler.
	seedExpense(t, store, "sub-1", "entertainment", "NETFLIX", 15.99, time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	seedExpense(t, store, "sub-2", "entertainment", "NETFLIX", 15.99, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	seedExpense(t, store, "sub-3", "entertainment", "NETFLIX", 15.99, time.Date(2024, 5, 31, 9, 0, 0, 0, time.UTC))
	categories := []string{"transport", "shopping", "health", "education", "pets", "clothing", "gifts"}
	weekdays := []int{3, 4, 5, 6, 7, 10, 11}
	for i, category := range categories {
		seedExpense(t, store, "fill-"+category, category, "STORE "+category, 60,
			time.Date(2024, 6, weekdays[i], 10, 0, 0, 0, time.UTC))
	}

	resp, err := http.Get(ts.URL + "/api/users/user-1/insights")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Findings carry a typed payload, so decode the wire shape loosely.
	var result struct {
		Message  string `json:"message"`
		Patterns []struct {
			Type model.FindingType `json:"type"`
			Data map[string]any    `json:"data"`
		} `json:"patterns"`
	}
	decodeBody(t, resp, &result)
	assert.Empty(t, result.Message)
	require.Len(t, result.Patterns, 1)
	assert.Equal(t, model.FindingRecurringPayment, result.Patterns[0].Type)
	assert.Equal(t, "NETFLIX", result.Patterns[0].Data["merchant"])
}

func TestRunChecksEndpointAndThrottle(t *testing.T) {
	ts, store := setupServer(t, map[string]float64{"food": 100})

	seedExpense(t, store, "txn-1", "food", "GROCERY", 150, testNow.AddDate(0, 0, -5))

	resp, err := http.Post(ts.URL+"/api/users/user-1/checks", "application/json", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result analysis.CheckResult
	decodeBody(t, resp, &result)
	assert.False(t, result.Skipped)
	require.Len(t, result.Notifications, 1)
	assert.Equal(t, model.NotificationError, result.Notifications[0].Type)

	// The second call inside the 24h window is a no-op.
	resp, err = http.Post(ts.URL+"/api/users/user-1/checks", "application/json", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	decodeBody(t, resp, &result)
	assert.True(t, result.Skipped)

	stored, err := store.GetNotifications(context.Background(), "user-1", false, 0)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestWeeklySummaryEndpoint(t *testing.T) {
	ts, store := setupServer(t, nil)

	resp, err := http.Post(ts.URL+"/api/users/user-1/summary", "application/json", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Success      bool               `json:"success"`
		Notification model.Notification `json:"notification"`
	}
	decodeBody(t, resp, &result)
	assert.True(t, result.Success)
	assert.Equal(t, model.NotificationInfo, result.Notification.Type)

	// Re-triggering writes another notification; the summary is not
	// throttled.
	resp, err = http.Post(ts.URL+"/api/users/user-1/summary", "application/json", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()

	stored, err := store.GetNotifications(context.Background(), "user-1", false, 0)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestNotificationEndpoints(t *testing.T) {
	ts, store := setupServer(t, nil)

	n := model.Notification{
		UserID:  "user-1",
		Type:    model.NotificationWarning,
		Title:   "Budget Warning",
		Message: "Close to the food budget",
	}
	require.NoError(t, store.CreateNotification(context.Background(), &n))

	resp, err := http.Get(ts.URL + "/api/users/user-1/notifications?unread=true")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list struct {
		Notifications []model.Notification `json:"notifications"`
	}
	decodeBody(t, resp, &list)
	require.Len(t, list.Notifications, 1)

	req, err := http.NewRequest(http.MethodPut,
		fmt.Sprintf("%s/api/notifications/%d/read", ts.URL, n.ID),
		bytes.NewBufferString(`{"read": true}`))
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(ts.URL + "/api/users/user-1/notifications?unread=true")
	require.NoError(t, err)
	decodeBody(t, resp, &list)
	assert.Empty(t, list.Notifications)
}

func TestMarkNotificationReadInvalidID(t *testing.T) {
	ts, _ := setupServer(t, nil)

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/notifications/abc/read", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetNotificationsInvalidLimit(t *testing.T) {
	ts, _ := setupServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/users/user-1/notifications?limit=nope")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
