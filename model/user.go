package model

import (
	"time"
	"unicode"
)

const (
	RoleAdmin uint8 = iota
	RoleMember
)

type User struct {
	Common
	Username          string `json:"username,omitempty" gorm:"uniqueIndex"`
	Password          string `json:"-" gorm:"type:char(72)"`
	Role              uint8  `json:"role"`
	ClientID          uint64 `json:"client_id,omitempty"`
	FirstName         string `json:"first_name,omitempty"`
	LastName          string `json:"last_name,omitempty"`
	PhoneNumber       string `json:"phone_number,omitempty"`
	Timezone          string `json:"timezone,omitempty"`
	Language          string `json:"language,omitempty"`
	AvatarURL         string `json:"avatar_url,omitempty"`
	PasswordUpdatedAt string `json:"password_updated_at,omitempty"`
	MFAEnabled        bool   `json:"mfa_enabled"`
	// SessionsRevokedAt invalidates every token issued before it.
	SessionsRevokedAt *time.Time `json:"-"`
	// TOTPSecret holds the pending secret during enrollment and the
	// confirmed secret once MFAEnabled is set. Never serialized.
	TOTPSecret string `json:"-" gorm:"type:char(64)"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Profile is the current user joined with their client organization.
type Profile struct {
	User
	ClientName          string `json:"client_name,omitempty"`
	ClientStatus        string `json:"client_status,omitempty"`
	ClientDriveFolderID string `json:"client_drive_folder_id,omitempty"`
}

// CheckPasswordComplexity enforces the portal password policy:
// at least 12 characters with upper, lower, digit and special.
func CheckPasswordComplexity(pw string) bool {
	if len(pw) < 12 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && lower && digit && special
}
