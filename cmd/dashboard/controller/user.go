package controller

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/service/singleton"
)

// Get profile
// @Summary Get current user with client organization
// @Security BearerAuth
// @Schemes
// @Description Get current user with client organization
// @Tags auth required
// @Produce json
// @Success 200 {object} model.CommonResponse[model.Profile]
// @Router /profile [get]
func getProfile(c *gin.Context) (*model.Profile, error) {
	return currentUser(c), nil
}

// Edit profile
// @Summary Edit current user profile
// @Security BearerAuth
// @Schemes
// @Description Edit current user profile
// @Tags auth required
// @Accept json
// @param request body model.ProfileForm true "Profile Request"
// @Produce json
// @Success 200 {object} model.CommonResponse[model.Profile]
// @Router /profile [patch]
func updateProfile(c *gin.Context) (*model.Profile, error) {
	var pf model.ProfileForm
	if err := c.ShouldBindJSON(&pf); err != nil {
		return nil, err
	}
	if err := pf.Validate(); err != nil {
		return nil, err
	}

	user := currentUser(c)
	var u model.User
	if err := singleton.DB.First(&u, user.ID).Error; err != nil {
		return nil, newGormError("%v", err)
	}
	if err := copier.CopyWithOption(&u, &pf, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	if err := singleton.DB.Save(&u).Error; err != nil {
		return nil, newGormError("%v", err)
	}

	singleton.OnUserUpdate(user.ID)
	return singleton.GetProfile(user.ID)
}

// Change password
// @Summary Change current user password
// @Security BearerAuth
// @Schemes
// @Description Change current user password
// @Tags auth required
// @Accept json
// @param request body model.PasswordForm true "Password Request"
// @Produce json
// @Success 200 {object} model.CommonResponse[any]
// @Router /profile/password [post]
func updatePassword(c *gin.Context) (any, error) {
	var pf model.PasswordForm
	if err := c.ShouldBindJSON(&pf); err != nil {
		return nil, err
	}

	user := currentUser(c)
	var u model.User
	if err := singleton.DB.First(&u, user.ID).Error; err != nil {
		return nil, newGormError("%v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(pf.CurrentPassword)); err != nil {
		return nil, errors.New("current password is incorrect")
	}
	if !model.CheckPasswordComplexity(pf.NewPassword) {
		return nil, errors.New("password must be at least 12 characters with upper, lower, digit and special")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pf.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	err = singleton.DB.Model(&u).Updates(map[string]interface{}{
		"password":            string(hash),
		"password_updated_at": time.Now().Format(time.RFC3339),
	}).Error
	if err != nil {
		return nil, newGormError("%v", err)
	}

	singleton.OnUserUpdate(user.ID)
	singleton.RecordActivity(user.ID, model.ActivityTypePasswordChange,
		c.Request.UserAgent(), c.GetString(model.CtxKeyRealIPStr))
	return nil, nil
}

// Revoke sessions
// @Summary Sign the current user out of every session
// @Security BearerAuth
// @Schemes
// @Description Sign the current user out of every session, this one included
// @Tags auth required
// @Produce json
// @Success 200 {object} model.CommonResponse[any]
// @Router /profile/revoke-sessions [post]
func revokeSessions(c *gin.Context) (any, error) {
	user := currentUser(c)
	if err := singleton.RevokeSessions(user.ID); err != nil {
		return nil, newGormError("%v", err)
	}
	singleton.RecordActivity(user.ID, model.ActivityTypeSessionRevoked,
		c.Request.UserAgent(), c.GetString(model.CtxKeyRealIPStr))
	return nil, nil
}

// List user
// @Summary List user
// @Security BearerAuth
// @Schemes
// @Description List user
// @Tags admin required
// @Produce json
// @Success 200 {object} model.CommonResponse[[]model.User]
// @Router /admin/users [get]
func listUser(c *gin.Context) ([]model.User, error) {
	var users []model.User
	if err := singleton.DB.Find(&users).Error; err != nil {
		return nil, newGormError("%v", err)
	}
	return users, nil
}

// Create user
// @Summary Create user
// @Security BearerAuth
// @Schemes
// @Description Create user
// @Tags admin required
// @Accept json
// @param request body model.UserForm true "User Request"
// @Produce json
// @Success 200 {object} model.CommonResponse[any]
// @Router /admin/users [post]
func createUser(c *gin.Context) (any, error) {
	var uf model.UserForm
	if err := c.ShouldBindJSON(&uf); err != nil {
		return nil, err
	}

	if uf.Username == "" {
		return nil, errors.New("username can't be empty")
	}
	if !model.CheckPasswordComplexity(uf.Password) {
		return nil, errors.New("password must be at least 12 characters with upper, lower, digit and special")
	}
	if uf.Role == model.RoleMember && uf.ClientID == 0 {
		return nil, errors.New("member accounts need a client organization")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uf.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := model.User{
		Username: uf.Username,
		Password: string(hash),
		Role:     uf.Role,
		ClientID: uf.ClientID,
	}
	if err := singleton.DB.Create(&u).Error; err != nil {
		return nil, newGormError("%v", err)
	}
	return nil, nil
}

// Batch delete users
// @Summary Batch delete users
// @Security BearerAuth
// @Schemes
// @Description Batch delete users
// @Tags admin required
// @Accept json
// @param request body []uint64 true "id list"
// @Produce json
// @Success 200 {object} model.CommonResponse[any]
// @Router /admin/batch-delete/users [post]
func batchDeleteUser(c *gin.Context) (any, error) {
	var ids []uint64
	if err := c.ShouldBindJSON(&ids); err != nil {
		return nil, err
	}

	admin := currentUser(c)
	for _, id := range ids {
		if id == admin.ID {
			return nil, errors.New("can't delete yourself")
		}
	}

	err := singleton.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id IN (?)", ids).Delete(&model.User{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.RecoveryCode{}, "user_id IN (?)", ids).Error
	})
	if err != nil {
		return nil, newGormError("%v", err)
	}

	for _, id := range ids {
		singleton.OnUserUpdate(id)
	}
	return nil, nil
}
