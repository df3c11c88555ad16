package model

import "time"

// RecoveryCode is a single-use fallback credential for accounts with
// MFA enabled. Only the hash is stored; the plain code is shown once
// at generation time.
type RecoveryCode struct {
	Common
	UserID   uint64     `json:"user_id" gorm:"index"`
	CodeHash string     `json:"-" gorm:"type:char(64)"`
	UsedAt   *time.Time `json:"used_at,omitempty"`
}
