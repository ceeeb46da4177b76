package models

import "time"

// User is an account keyed by email. Only the bcrypt hash of the password is
// ever stored, and it is never serialized into responses.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
	Name           string    `gorm:"size:255" json:"name"`
	Email          string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	HashedPassword []byte    `gorm:"not null" json:"-"`

	Transactions []Transaction `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
