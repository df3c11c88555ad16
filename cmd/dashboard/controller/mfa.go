package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/service/singleton"
)

// Enroll MFA
// @Summary Start a two-factor enrollment
// @Security BearerAuth
// @Schemes
// @Description Start a two-factor enrollment
// @Tags auth required
// @Produce json
// @Success 200 {object} model.CommonResponse[model.MFAEnrollResponse]
// @Router /mfa/enroll [post]
func enrollMFA(c *gin.Context) (*model.MFAEnrollResponse, error) {
	user := currentUser(c)
	return singleton.EnrollMFA(&user.User)
}

// Verify MFA
// @Summary Confirm a pending two-factor enrollment
// @Security BearerAuth
// @Schemes
// @Description Confirm a pending two-factor enrollment
// @Tags auth required
// @Accept json
// @param request body model.MFACodeForm true "Code Request"
// @Produce json
// @Success 200 {object} model.CommonResponse[model.RecoveryCodesResponse]
// @Router /mfa/verify [post]
func verifyMFA(c *gin.Context) (*model.RecoveryCodesResponse, error) {
	var mf model.MFACodeForm
	if err := c.ShouldBindJSON(&mf); err != nil {
		return nil, err
	}

	user := currentUser(c)
	codes, err := singleton.VerifyMFA(&user.User, mf.Code)
	if err != nil {
		return nil, err
	}

	singleton.RecordActivity(user.ID, model.ActivityTypeMFAEnabled,
		c.Request.UserAgent(), c.GetString(model.CtxKeyRealIPStr))
	return &model.RecoveryCodesResponse{Codes: codes}, nil
}

// Disable MFA
// @Summary Turn off the second factor
// @Security BearerAuth
// @Schemes
// @Description Turn off the second factor
// @Tags auth required
// @Accept json
// @param request body model.MFACodeForm true "Code Request"
// @Produce json
// @Success 200 {object} model.CommonResponse[any]
// @Router /mfa/disable [post]
func disableMFA(c *gin.Context) (any, error) {
	var mf model.MFACodeForm
	if err := c.ShouldBindJSON(&mf); err != nil {
		return nil, err
	}

	user := currentUser(c)
	if err := singleton.DisableMFA(&user.User, mf.Code); err != nil {
		return nil, err
	}

	singleton.RecordActivity(user.ID, model.ActivityTypeMFADisabled,
		c.Request.UserAgent(), c.GetString(model.CtxKeyRealIPStr))
	return nil, nil
}

// Regenerate recovery codes
// @Summary Replace the account recovery codes
// @Security BearerAuth
// @Schemes
// @Description Replace the account recovery codes
// @Tags auth required
// @Accept json
// @param request body model.MFACodeForm true "Code Request"
// @Produce json
// @Success 200 {object} model.CommonResponse[model.RecoveryCodesResponse]
// @Router /mfa/recovery-codes [post]
func regenerateRecoveryCodes(c *gin.Context) (*model.RecoveryCodesResponse, error) {
	var mf model.MFACodeForm
	if err := c.ShouldBindJSON(&mf); err != nil {
		return nil, err
	}

	user := currentUser(c)
	codes, err := singleton.RegenerateRecoveryCodes(&user.User, mf.Code)
	if err != nil {
		return nil, err
	}
	return &model.RecoveryCodesResponse{Codes: codes}, nil
}
