package user

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/menuqr-inc/menuqr/internal/shared/constants"
)

// User is an account on the platform. Role is either restaurant (owner)
// or admin.
type User struct {
	id            uint
	name          string
	email         string
	passwordHash  string
	role          string
	resetToken    *string
	resetTokenExp *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(name, email, passwordHash, role string) (*User, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %w", err)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if role != constants.RoleAdmin && role != constants.RoleRestaurant {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now().UTC()
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uint, name, email, passwordHash, role string,
	resetToken *string, resetTokenExp *time.Time, createdAt, updatedAt time.Time) (*User, error) {

	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if role != constants.RoleAdmin && role != constants.RoleRestaurant {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:            id,
		name:          name,
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		resetToken:    resetToken,
		resetTokenExp: resetTokenExp,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (u *User) ID() uint                  { return u.id }
func (u *User) Name() string              { return u.name }
func (u *User) Email() string             { return u.email }
func (u *User) PasswordHash() string      { return u.passwordHash }
func (u *User) Role() string              { return u.role }
func (u *User) ResetToken() *string       { return u.resetToken }
func (u *User) ResetTokenExp() *time.Time { return u.resetTokenExp }
func (u *User) CreatedAt() time.Time      { return u.createdAt }
func (u *User) UpdatedAt() time.Time      { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	u.id = id
	return nil
}

func (u *User) IsAdmin() bool {
	return u.role == constants.RoleAdmin
}

func (u *User) UpdateProfile(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	u.name = name
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.resetToken = nil
	u.resetTokenExp = nil
	u.updatedAt = time.Now().UTC()
	return nil
}

// SetResetToken stores a password reset token hash with its expiry.
func (u *User) SetResetToken(tokenHash string, expiresAt time.Time) {
	u.resetToken = &tokenHash
	u.resetTokenExp = &expiresAt
	u.updatedAt = time.Now().UTC()
}

// CanResetWith reports whether the given token hash matches an unexpired
// reset token.
func (u *User) CanResetWith(tokenHash string, now time.Time) bool {
	return u.resetToken != nil && *u.resetToken == tokenHash &&
		u.resetTokenExp != nil && u.resetTokenExp.After(now)
}
