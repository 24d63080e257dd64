package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpulse/finpulse/internal/common"
	"github.com/finpulse/finpulse/internal/model"
	"github.com/finpulse/finpulse/internal/testutil"
)

func testTransaction(id, userID string, amount float64, date time.Time) model.Transaction {
	txn := model.Transaction{
		ID:          id,
		UserID:      userID,
		AccountID:   "acc-1",
		Type:        model.TypeExpense,
		Category:    "food",
		Description: "GROCERY STORE",
		Amount:      amount,
		CreatedAt:   date,
	}
	txn.Hash = txn.GenerateHash()
	return txn
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := testutil.SetupTestDB(t)

	// Running migrations again on a current database is a no-op.
	err := store.Migrate(context.Background())
	require.NoError(t, err)
}

func TestSaveAndGetTransactions(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		testTransaction("txn-1", "user-1", 50, base),
		testTransaction("txn-2", "user-1", 75, base.AddDate(0, 0, 5)),
		testTransaction("txn-3", "user-2", 100, base),
	}
	// Distinct descriptions so hashes differ.
	txns[1].Description = "COFFEE SHOP"
	txns[1].Hash = txns[1].GenerateHash()
	txns[2].Description = "BOOKSTORE"
	txns[2].Hash = txns[2].GenerateHash()

	require.NoError(t, store.SaveTransactions(ctx, txns))

	got, err := store.GetTransactionsByUser(ctx, "user-1", base.AddDate(0, -1, 0), base.AddDate(0, 1, 0))
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Ordered oldest first.
	assert.Equal(t, "txn-1", got[0].ID)
	assert.Equal(t, "txn-2", got[1].ID)
	assert.Equal(t, 50.0, got[0].Amount)
	assert.Equal(t, model.TypeExpense, got[0].Type)
	assert.Equal(t, "food", got[0].Category)
}

func TestSaveTransactionsDeduplicatesByHash(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	date := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	first := testTransaction("txn-1", "user-1", 50, date)
	duplicate := testTransaction("txn-dup", "user-1", 50, date)

	require.NoError(t, store.SaveTransactions(ctx, []model.Transaction{first}))
	require.NoError(t, store.SaveTransactions(ctx, []model.Transaction{duplicate}))

	got, err := store.GetTransactionsByUser(ctx, "user-1", date.AddDate(0, -1, 0), date.AddDate(0, 1, 0))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "txn-1", got[0].ID)
}

func TestGetTransactionsByUserWindow(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		testTransaction("txn-old", "user-1", 10, base.AddDate(0, 0, -100)),
		testTransaction("txn-in", "user-1", 20, base.AddDate(0, 0, -10)),
	}
	txns[1].Description = "INSIDE WINDOW"
	txns[1].Hash = txns[1].GenerateHash()

	require.NoError(t, store.SaveTransactions(ctx, txns))

	got, err := store.GetTransactionsByUser(ctx, "user-1", base.AddDate(0, 0, -90), base)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "txn-in", got[0].ID)
}

func TestSoftDeleteTransaction(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	date := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	txn := testTransaction("txn-1", "user-1", 50, date)
	require.NoError(t, store.SaveTransactions(ctx, []model.Transaction{txn}))

	require.NoError(t, store.SoftDeleteTransaction(ctx, "txn-1"))

	// Deleted rows no longer appear in reads.
	got, err := store.GetTransactionsByUser(ctx, "user-1", date.AddDate(0, -1, 0), date.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Empty(t, got)

	// Deleting again reports not found.
	err = store.SoftDeleteTransaction(ctx, "txn-1")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSoftDeleteUnknownTransaction(t *testing.T) {
	store := testutil.SetupTestDB(t)

	err := store.SoftDeleteTransaction(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSaveAndGetGoals(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	deadline := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	active := model.Goal{
		ID:            "goal-1",
		UserID:        "user-1",
		Title:         "Emergency fund",
		TargetAmount:  10000,
		CurrentAmount: 2500,
		Deadline:      &deadline,
	}
	done := model.Goal{
		ID:            "goal-2",
		UserID:        "user-1",
		Title:         "New laptop",
		TargetAmount:  2000,
		CurrentAmount: 2000,
		IsCompleted:   true,
	}
	require.NoError(t, store.SaveGoal(ctx, &active))
	require.NoError(t, store.SaveGoal(ctx, &done))

	got, err := store.GetGoals(ctx, "user-1", false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "goal-1", got[0].ID)
	require.NotNil(t, got[0].Deadline)
	assert.True(t, got[0].Deadline.Equal(deadline))

	all, err := store.GetGoals(ctx, "user-1", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSaveGoalUpdatesExisting(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	goal := model.Goal{
		ID:           "goal-1",
		UserID:       "user-1",
		Title:        "Vacation",
		TargetAmount: 3000,
	}
	require.NoError(t, store.SaveGoal(ctx, &goal))

	goal.CurrentAmount = 1500
	require.NoError(t, store.SaveGoal(ctx, &goal))

	got, err := store.GetGoals(ctx, "user-1", true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1500.0, got[0].CurrentAmount)
}

func TestNotificationLifecycle(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	n := model.Notification{
		UserID:  "user-1",
		Type:    model.NotificationWarning,
		Title:   "Budget Warning",
		Message: "You are close to your food budget",
		Data:    `{"category":"food"}`,
	}
	require.NoError(t, store.CreateNotification(ctx, &n))
	assert.Greater(t, n.ID, int64(0))
	assert.False(t, n.CreatedAt.IsZero())

	unread, err := store.GetNotifications(ctx, "user-1", true, 0)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, model.NotificationWarning, unread[0].Type)
	assert.Equal(t, `{"category":"food"}`, unread[0].Data)

	require.NoError(t, store.MarkNotificationRead(ctx, n.ID, true))

	unread, err = store.GetNotifications(ctx, "user-1", true, 0)
	require.NoError(t, err)
	assert.Empty(t, unread)

	all, err := store.GetNotifications(ctx, "user-1", false, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Read)
}

func TestGetNotificationsLimit(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		n := model.Notification{
			UserID:    "user-1",
			Type:      model.NotificationInfo,
			Title:     "Weekly Summary",
			Message:   "summary",
			CreatedAt: base.AddDate(0, 0, i),
		}
		require.NoError(t, store.CreateNotification(ctx, &n))
	}

	got, err := store.GetNotifications(ctx, "user-1", false, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first.
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))
}

func TestMarkNotificationReadUnknown(t *testing.T) {
	store := testutil.SetupTestDB(t)

	err := store.MarkNotificationRead(context.Background(), 999, true)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAnalysisRunRoundTrip(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	// Never run yet.
	last, err := store.LastAnalysisRun(ctx, "user-1", "notification_checks")
	require.NoError(t, err)
	assert.Nil(t, last)

	at := time.Date(2024, 6, 19, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.SetLastAnalysisRun(ctx, "user-1", "notification_checks", at))

	last, err = store.LastAnalysisRun(ctx, "user-1", "notification_checks")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, last.Equal(at))

	// Upsert replaces the timestamp.
	later := at.Add(25 * time.Hour)
	require.NoError(t, store.SetLastAnalysisRun(ctx, "user-1", "notification_checks", later))

	last, err = store.LastAnalysisRun(ctx, "user-1", "notification_checks")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, last.Equal(later))
}

func TestValidationErrors(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	err := store.SaveTransactions(ctx, []model.Transaction{{ID: "txn-1"}})
	assert.Error(t, err)

	_, err = store.GetTransactionsByUser(ctx, "", time.Time{}, time.Now())
	assert.Error(t, err)

	err = store.SaveGoal(ctx, &model.Goal{ID: "goal-1", UserID: "user-1", Title: "x", TargetAmount: 0})
	assert.Error(t, err)

	err = store.CreateNotification(ctx, &model.Notification{UserID: "user-1", Title: "x", Type: "bogus"})
	assert.Error(t, err)
}
