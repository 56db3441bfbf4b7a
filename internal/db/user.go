package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Role grants access to the admin area.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleViewer Role = "VIEWER"
)

// User is an account that can sign in.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	Password  string    `gorm:"not null" json:"-"`
	Role      Role      `gorm:"type:text;not null;default:VIEWER" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EnsureUser creates a bcrypt-hashed account for email when none exists.
// Blank email or password is a no-op. It reports whether a user was created.
func EnsureUser(ctx context.Context, gdb *gorm.DB, email, password, name string, role Role) (bool, error) {
	trimmedEmail := strings.ToLower(strings.TrimSpace(email))
	trimmedPassword := strings.TrimSpace(password)
	if trimmedEmail == "" || trimmedPassword == "" {
		return false, nil
	}

	if gdb == nil {
		return false, errors.New("database not initialized")
	}

	var existing User
	err := gdb.WithContext(ctx).Where("email = ?", trimmedEmail).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	if strings.TrimSpace(name) == "" {
		name = trimmedEmail
	}
	user := User{Email: trimmedEmail, Name: strings.TrimSpace(name), Password: string(hashed), Role: role}
	if err := gdb.WithContext(ctx).Create(&user).Error; err != nil {
		return false, err
	}
	return true, nil
}
