package main

import (
	"errors"
	"time"

	"fintrack/models"
)

var (
	ErrInvalidTransaction  = errors.New("invalid transaction input")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionInput carries the client-settable fields of an entry. The owner is
// never part of it; it always comes from the resolved identity.
type transactionInput struct {
	Type        string  `form:"type" json:"type"`
	Amount      float64 `form:"amount" json:"amount"`
	Category    string  `form:"category" json:"category"`
	Description string  `form:"description" json:"description"`
	Date        string  `form:"date" json:"date"`
}

func (in *transactionInput) validate() error {
	if in.Type != "income" && in.Type != "expense" {
		return ErrInvalidTransaction
	}
	if !(in.Amount > 0) {
		return ErrInvalidTransaction
	}
	if in.Date == "" {
		in.Date = time.Now().Format("2006-01-02")
	}
	return nil
}

// listTransactions returns the user's entries ordered by date descending, ties
// broken by creation time descending. No entries is an empty slice, not an error.
func listTransactions(userID uint) ([]models.Transaction, error) {
	items := []models.Transaction{}
	err := db.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&items).Error
	return items, err
}

// createTransaction stores a new entry for the user and returns its id.
func createTransaction(userID uint, in transactionInput) (uint, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	tx := models.Transaction{
		UserID:      userID,
		Type:        in.Type,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
	}
	if err := db.Create(&tx).Error; err != nil {
		return 0, err
	}
	return tx.ID, nil
}

// updateTransaction replaces the entry's fields. The single scoped UPDATE means a
// row owned by another user behaves exactly like a missing row: zero affected
// rows, no separate existence check.
func updateTransaction(userID, id uint, in transactionInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	res := db.Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"type":        in.Type,
			"amount":      in.Amount,
			"category":    in.Category,
			"description": in.Description,
			"date":        in.Date,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// deleteTransaction removes the entry, with the same ownership scoping as update.
func deleteTransaction(userID, id uint) error {
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
