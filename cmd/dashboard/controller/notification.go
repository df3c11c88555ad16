package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/service/singleton"
)

// List notification preferences
// @Summary List notification preferences grouped by category
// @Security BearerAuth
// @Schemes
// @Description List notification preferences grouped by category
// @Tags auth required
// @Produce json
// @Success 200 {object} model.CommonResponse[[]model.GroupedNotification]
// @Router /notifications [get]
func listNotifications(c *gin.Context) ([]model.GroupedNotification, error) {
	return singleton.GetGroupedNotifications(currentUser(c).ID), nil
}

// Save notification preferences
// @Summary Save touched notification toggles in one batch
// @Security BearerAuth
// @Schemes
// @Description Save touched notification toggles in one batch
// @Tags auth required
// @Accept json
// @param request body model.PreferenceForm true "Preference Request"
// @Produce json
// @Success 200 {object} model.CommonResponse[[]model.GroupedNotification]
// @Router /notifications [post]
func savePreferences(c *gin.Context) ([]model.GroupedNotification, error) {
	var pf model.PreferenceForm
	if err := c.ShouldBindJSON(&pf); err != nil {
		return nil, err
	}

	user := currentUser(c)
	if err := singleton.SavePreferences(user.ID, pf.Entries); err != nil {
		return nil, err
	}
	return singleton.GetGroupedNotifications(user.ID), nil
}
