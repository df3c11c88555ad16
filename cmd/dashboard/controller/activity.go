package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/service/singleton"
)

// List activity
// @Summary List account activity grouped by date in the user timezone
// @Security BearerAuth
// @Schemes
// @Description List account activity grouped by date in the user timezone
// @Tags auth required
// @Produce json
// @Success 200 {object} model.CommonResponse[[]model.ActivityDay]
// @Router /activity [get]
func listActivity(c *gin.Context) ([]model.ActivityDay, error) {
	days, err := singleton.ListActivityDays(currentUser(c))
	if err != nil {
		return nil, newGormError("%v", err)
	}
	return days, nil
}
