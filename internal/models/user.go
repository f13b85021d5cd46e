package models

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User represents an account that can own favorites.
// Users are read-only over HTTP; they are only created by seeding.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	Password string `json:"-" gorm:"type:varchar(255);not null" validate:"required,min=6"`
	IsActive bool   `json:"is_active" gorm:"not null"`
}

// UserResponse is the serialized form of a User.
type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// Serialize maps the row to its JSON representation. The password never leaves the store.
func (u *User) Serialize() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}

// BeforeCreate hashes the password unless it already is a bcrypt hash.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	return u.HashPassword()
}

// HashPassword replaces the plain-text password with its bcrypt hash.
func (u *User) HashPassword() error {
	if u.Password == "" || isBcryptHash(u.Password) {
		return nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

func isBcryptHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
