package singleton

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/pkg/totp"
)

func TestEnrollMFAKeepsFlagOff(t *testing.T) {
	newTestEnv(t)
	user := seedUser(t, "client@fungisteel.com")

	resp, err := EnrollMFA(user)
	assert.Nil(t, err)
	assert.NotEmpty(t, resp.Secret)
	assert.Contains(t, resp.ProvisioningURI, "otpauth://totp/Aurem:")

	var stored model.User
	assert.Nil(t, DB.First(&stored, user.ID).Error)
	assert.False(t, stored.MFAEnabled)
	assert.Equal(t, resp.Secret, stored.TOTPSecret)
}

func TestVerifyMFARejectedCodeLeavesFlagOff(t *testing.T) {
	newTestEnv(t)
	user := seedUser(t, "client@fungisteel.com")
	_, err := EnrollMFA(user)
	assert.Nil(t, err)

	codes, err := VerifyMFA(user, "000001")
	assert.ErrorIs(t, err, ErrMFACodeInvalid)
	assert.Nil(t, codes)

	var stored model.User
	assert.Nil(t, DB.First(&stored, user.ID).Error)
	assert.False(t, stored.MFAEnabled)
	assert.NotEmpty(t, stored.TOTPSecret) // enrollment still pending
}

func TestVerifyMFAEnablesAndIssuesRecoveryCodes(t *testing.T) {
	newTestEnv(t)
	user := seedUser(t, "client@fungisteel.com")
	resp, err := EnrollMFA(user)
	assert.Nil(t, err)

	code, err := totp.GenerateCode(resp.Secret, time.Now())
	assert.Nil(t, err)

	codes, err := VerifyMFA(user, code)
	assert.Nil(t, err)
	assert.Len(t, codes, recoveryCodeCount)

	var stored model.User
	assert.Nil(t, DB.First(&stored, user.ID).Error)
	assert.True(t, stored.MFAEnabled)

	var count int64
	DB.Model(&model.RecoveryCode{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, recoveryCodeCount, count)
}

func TestVerifyMFAWithoutEnrollment(t *testing.T) {
	newTestEnv(t)
	user := seedUser(t, "client@fungisteel.com")

	_, err := VerifyMFA(user, "123456")
	assert.ErrorIs(t, err, ErrMFANotEnrolled)
}

func TestDisableMFAClearsFactorAndCodes(t *testing.T) {
	newTestEnv(t)
	user := seedUser(t, "client@fungisteel.com")
	resp, _ := EnrollMFA(user)
	code, _ := totp.GenerateCode(resp.Secret, time.Now())
	_, err := VerifyMFA(user, code)
	assert.Nil(t, err)

	code, _ = totp.GenerateCode(resp.Secret, time.Now())
	assert.Nil(t, DisableMFA(user, code))

	var stored model.User
	assert.Nil(t, DB.First(&stored, user.ID).Error)
	assert.False(t, stored.MFAEnabled)
	assert.Empty(t, stored.TOTPSecret)

	var count int64
	DB.Model(&model.RecoveryCode{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)
}

func TestDisableMFAWithRecoveryCode(t *testing.T) {
	newTestEnv(t)
	user := seedUser(t, "client@fungisteel.com")
	resp, _ := EnrollMFA(user)
	code, _ := totp.GenerateCode(resp.Secret, time.Now())
	codes, err := VerifyMFA(user, code)
	assert.Nil(t, err)

	assert.Nil(t, DisableMFA(user, codes[0]))

	var stored model.User
	assert.Nil(t, DB.First(&stored, user.ID).Error)
	assert.False(t, stored.MFAEnabled)
}

func TestEnrollMFARejectedWhileEnabled(t *testing.T) {
	newTestEnv(t)
	user := seedUser(t, "client@fungisteel.com")
	resp, _ := EnrollMFA(user)
	code, _ := totp.GenerateCode(resp.Secret, time.Now())
	_, err := VerifyMFA(user, code)
	assert.Nil(t, err)

	_, err = EnrollMFA(user)
	assert.ErrorIs(t, err, ErrMFAAlreadyEnabled)

	// The confirmed secret must survive untouched: the user's existing
	// authenticator still has to produce accepted codes.
	var stored model.User
	assert.Nil(t, DB.First(&stored, user.ID).Error)
	assert.True(t, stored.MFAEnabled)
	assert.Equal(t, resp.Secret, stored.TOTPSecret)
	code, _ = totp.GenerateCode(resp.Secret, time.Now())
	assert.True(t, totp.Validate(stored.TOTPSecret, code, time.Now()))
}

func TestHashRecoveryCodeDeterministic(t *testing.T) {
	a := hashRecoveryCode("abcd-efgh-jkmnp")
	b := hashRecoveryCode("abcd-efgh-jkmnp")
	c := hashRecoveryCode("abcd-efgh-jkmnq")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestRecoveryCodeSingleUse(t *testing.T) {
	newTestEnv(t)
	user := seedUser(t, "client@fungisteel.com")
	resp, _ := EnrollMFA(user)
	code, _ := totp.GenerateCode(resp.Secret, time.Now())
	codes, err := VerifyMFA(user, code)
	assert.Nil(t, err)

	assert.True(t, consumeRecoveryCode(user.ID, codes[0]))
	assert.False(t, consumeRecoveryCode(user.ID, codes[0]))
	assert.True(t, consumeRecoveryCode(user.ID, codes[1]))
}
