package models

import "time"

// Transaction is a single income or expense entry belonging to exactly one user.
// Date holds a calendar date as YYYY-MM-DD, so ordering it as text is date order.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Type        string    `gorm:"size:16;not null" json:"type"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `gorm:"size:255" json:"category"`
	Description string    `gorm:"size:512" json:"description"`
	Date        string    `gorm:"size:10;not null" json:"date"`
}
