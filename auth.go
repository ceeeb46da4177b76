package main

import (
	"errors"
	"strings"

	"fintrack/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RegisterUser creates an account with a bcrypt-hashed password and returns its id.
// bcrypt.DefaultCost is a work factor of 10 rounds.
func RegisterUser(name, email, password string) (uint, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	// pre-check existing (optimistic)
	if _, err := findUserByEmail(email); err == nil {
		return 0, ErrDuplicateEmail
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	user := models.User{Name: name, Email: email, HashedPassword: hashed}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) { // race condition after initial check
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}
	return user.ID, nil
}

// Authenticate verifies email and password against the stored hash. A missing
// user and a wrong password are indistinguishable to the caller.
func Authenticate(email, password string) (models.User, error) {
	user, err := findUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword(user.HashedPassword, []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func findUserByEmail(email string) (models.User, error) {
	var user models.User
	err := db.Where("email = ?", strings.TrimSpace(email)).First(&user).Error
	return user, err
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "UNIQUE constraint") ||
		strings.Contains(s, "already exists")
}
