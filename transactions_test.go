package main

import (
	"testing"
	"time"

	"fintrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, email string) uint {
	t.Helper()
	id, err := RegisterUser("", email, "pw")
	require.NoError(t, err)
	return id
}

func TestOwnershipScoping(t *testing.T) {
	setupTestDB(t)
	userA := createTestUser(t, "a@example.com")
	userB := createTestUser(t, "b@example.com")

	id, err := createTransaction(userA, transactionInput{Type: "expense", Amount: 10, Date: "2024-05-01"})
	require.NoError(t, err)

	// B never sees A's entry
	items, err := listTransactions(userB)
	require.NoError(t, err)
	assert.Empty(t, items)

	// B mutating A's entry looks exactly like a missing row
	err = updateTransaction(userB, id, transactionInput{Type: "income", Amount: 99, Date: "2024-05-02"})
	assert.ErrorIs(t, err, ErrTransactionNotFound)
	err = deleteTransaction(userB, id)
	assert.ErrorIs(t, err, ErrTransactionNotFound)

	// and A's entry is untouched
	items, err = listTransactions(userA)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "expense", items[0].Type)
	assert.Equal(t, 10.0, items[0].Amount)
}

func TestListOrdering(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "order@example.com")

	for _, date := range []string{"2024-01-01", "2024-01-03", "2024-01-02"} {
		_, err := createTransaction(user, transactionInput{Type: "income", Amount: 1, Date: date})
		require.NoError(t, err)
	}

	items, err := listTransactions(user)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "2024-01-03", items[0].Date)
	assert.Equal(t, "2024-01-02", items[1].Date)
	assert.Equal(t, "2024-01-01", items[2].Date)
}

func TestListOrderingCreatedAtTieBreak(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "tie@example.com")

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	older := models.Transaction{UserID: user, Type: "income", Amount: 1, Date: "2024-06-01", Description: "older", CreatedAt: base}
	newer := models.Transaction{UserID: user, Type: "income", Amount: 2, Date: "2024-06-01", Description: "newer", CreatedAt: base.Add(time.Hour)}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	items, err := listTransactions(user)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "newer", items[0].Description)
	assert.Equal(t, "older", items[1].Description)
}

func TestCreateValidation(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "v@example.com")

	cases := []transactionInput{
		{Type: "expense", Amount: -5},
		{Type: "", Amount: 10},
		{Type: "transfer", Amount: 10},
		{Type: "income", Amount: 0},
	}
	for _, in := range cases {
		_, err := createTransaction(user, in)
		assert.ErrorIs(t, err, ErrInvalidTransaction, "input %+v", in)
	}

	// nothing persisted
	items, err := listTransactions(user)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateDefaultsDate(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "d@example.com")

	_, err := createTransaction(user, transactionInput{Type: "income", Amount: 5})
	require.NoError(t, err)

	items, err := listTransactions(user)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, time.Now().Format("2006-01-02"), items[0].Date)
}

func TestUpdateReplacesFields(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "u@example.com")

	id, err := createTransaction(user, transactionInput{Type: "expense", Amount: 10, Category: "food", Date: "2024-05-01"})
	require.NoError(t, err)

	err = updateTransaction(user, id, transactionInput{Type: "income", Amount: 20, Category: "salary", Description: "pay", Date: "2024-05-02"})
	require.NoError(t, err)

	items, err := listTransactions(user)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "income", items[0].Type)
	assert.Equal(t, 20.0, items[0].Amount)
	assert.Equal(t, "salary", items[0].Category)
	assert.Equal(t, "pay", items[0].Description)
	assert.Equal(t, "2024-05-02", items[0].Date)
}

func TestUpdateMissingRow(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "m@example.com")

	err := updateTransaction(user, 12345, transactionInput{Type: "income", Amount: 1, Date: "2024-05-01"})
	assert.ErrorIs(t, err, ErrTransactionNotFound)
	err = deleteTransaction(user, 12345)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}
