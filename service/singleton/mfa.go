package singleton

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"time"

	"golang.org/x/crypto/hkdf"
	"gorm.io/gorm"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/pkg/totp"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/pkg/utils"
)

var (
	ErrMFANotEnrolled    = errors.New("no pending MFA enrollment")
	ErrMFAAlreadyEnabled = errors.New("second factor already enabled")
	ErrMFACodeInvalid    = errors.New("invalid verification code")
)

const recoveryCodeCount = 8

// EnrollMFA generates a fresh secret and stores it pending. The flag
// stays off until VerifyMFA confirms the authenticator works; repeated
// enrollment simply replaces the pending secret. An account with a
// confirmed factor must disable it first, otherwise the flag would
// claim MFA while the stored secret no longer matches any authenticator.
func EnrollMFA(user *model.User) (*model.MFAEnrollResponse, error) {
	if user.MFAEnabled {
		return nil, ErrMFAAlreadyEnabled
	}
	secret, err := totp.GenerateSecret()
	if err != nil {
		return nil, err
	}

	if err := DB.Model(user).Update("totp_secret", secret).Error; err != nil {
		return nil, err
	}
	user.TOTPSecret = secret
	OnUserUpdate(user.ID)

	return &model.MFAEnrollResponse{
		Secret:          secret,
		ProvisioningURI: totp.ProvisioningURI(secret, user.Username, Conf.MFA.Issuer),
	}, nil
}

// VerifyMFA confirms the pending enrollment. A rejected code leaves
// the user exactly where they were: secret still pending, flag off.
// Success flips the flag and issues one-time recovery codes.
func VerifyMFA(user *model.User, code string) ([]string, error) {
	if user.TOTPSecret == "" {
		return nil, ErrMFANotEnrolled
	}
	if !totp.Validate(user.TOTPSecret, code, time.Now()) {
		return nil, ErrMFACodeInvalid
	}

	codes, err := generateRecoveryCodes(user.ID)
	if err != nil {
		return nil, err
	}

	if err := DB.Model(user).Update("mfa_enabled", true).Error; err != nil {
		return nil, err
	}
	user.MFAEnabled = true
	OnUserUpdate(user.ID)
	return codes, nil
}

// DisableMFA requires a current code (or an unused recovery code),
// then clears the factor and every remaining recovery code.
func DisableMFA(user *model.User, code string) error {
	if !user.MFAEnabled {
		return ErrMFANotEnrolled
	}
	if !totp.Validate(user.TOTPSecret, code, time.Now()) && !consumeRecoveryCode(user.ID, code) {
		return ErrMFACodeInvalid
	}

	err := DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(user).Updates(map[string]interface{}{
			"mfa_enabled": false,
			"totp_secret": "",
		}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.RecoveryCode{}, "user_id = ?", user.ID).Error
	})
	if err != nil {
		return err
	}

	user.MFAEnabled = false
	user.TOTPSecret = ""
	OnUserUpdate(user.ID)
	return nil
}

// RegenerateRecoveryCodes replaces the user's recovery codes; a valid
// current TOTP code is required.
func RegenerateRecoveryCodes(user *model.User, code string) ([]string, error) {
	if !user.MFAEnabled {
		return nil, ErrMFANotEnrolled
	}
	if !totp.Validate(user.TOTPSecret, code, time.Now()) {
		return nil, ErrMFACodeInvalid
	}
	return generateRecoveryCodes(user.ID)
}

func generateRecoveryCodes(userID uint64) ([]string, error) {
	codes := make([]string, 0, recoveryCodeCount)
	rows := make([]model.RecoveryCode, 0, recoveryCodeCount)
	for i := 0; i < recoveryCodeCount; i++ {
		code, err := utils.GenerateRecoveryCode()
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
		rows = append(rows, model.RecoveryCode{
			UserID:   userID,
			CodeHash: hashRecoveryCode(code),
		})
	}

	err := DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&model.RecoveryCode{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// consumeRecoveryCode marks a matching unused code as spent. Each code
// works exactly once.
func consumeRecoveryCode(userID uint64, code string) bool {
	var rc model.RecoveryCode
	err := DB.Where("user_id = ? AND code_hash = ? AND used_at IS NULL",
		userID, hashRecoveryCode(code)).First(&rc).Error
	if err != nil {
		return false
	}
	now := time.Now()
	return DB.Model(&rc).Update("used_at", &now).Error == nil
}

// recoveryCodeSalt binds derived hashes to this deployment domain so
// an identical code elsewhere never yields the same stored value.
var recoveryCodeSalt = []byte("aurem/recovery-code/v1")

func hashRecoveryCode(code string) string {
	out := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(code), recoveryCodeSalt, nil)
	if _, err := io.ReadFull(kdf, out); err != nil {
		panic(err)
	}
	return hex.EncodeToString(out)
}
