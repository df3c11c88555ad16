package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/service/singleton"
)

// PortfolioEntry is one client row on the admin overview, with the
// footprint counters shown on its card.
type PortfolioEntry struct {
	model.Client
	UserCount     int64 `json:"user_count"`
	DecisionCount int64 `json:"decision_count"`
	AssetCount    int64 `json:"asset_count"`
}

// Portfolio
// @Summary List all clients with their portal footprint
// @Security BearerAuth
// @Schemes
// @Description List all clients with their portal footprint
// @Tags admin required
// @Produce json
// @Success 200 {object} model.CommonResponse[[]PortfolioEntry]
// @Router /admin/portfolio [get]
func listPortfolio(c *gin.Context) ([]PortfolioEntry, error) {
	var clients []model.Client
	if err := singleton.DB.Order("name").Find(&clients).Error; err != nil {
		return nil, newGormError("%v", err)
	}

	userCounts, err := countByClient(&model.User{})
	if err != nil {
		return nil, err
	}
	decisionCounts, err := countByClient(&model.Decision{})
	if err != nil {
		return nil, err
	}
	assetCounts, err := countByClient(&model.Asset{})
	if err != nil {
		return nil, err
	}

	entries := make([]PortfolioEntry, 0, len(clients))
	for _, client := range clients {
		entries = append(entries, PortfolioEntry{
			Client:        client,
			UserCount:     userCounts[client.ID],
			DecisionCount: decisionCounts[client.ID],
			AssetCount:    assetCounts[client.ID],
		})
	}
	return entries, nil
}

func countByClient(m interface{}) (map[uint64]int64, error) {
	var rows []struct {
		ClientID uint64
		N        int64
	}
	err := singleton.DB.Model(m).
		Select("client_id, COUNT(*) AS n").
		Group("client_id").Scan(&rows).Error
	if err != nil {
		return nil, newGormError("%v", err)
	}

	counts := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		counts[row.ClientID] = row.N
	}
	return counts, nil
}

// Pulse
// @Summary Cross-client topic aggregation
// @Security BearerAuth
// @Schemes
// @Description Cross-client topic aggregation
// @Tags admin required
// @Produce json
// @Success 200 {object} model.CommonResponse[[]singleton.PulseTopic]
// @Router /admin/pulse [get]
func getPulse(c *gin.Context) ([]singleton.PulseTopic, error) {
	topics, err := singleton.GetPulse()
	if err != nil {
		return nil, newGormError("%v", err)
	}
	return topics, nil
}

// Create client
// @Summary Create a client organization
// @Security BearerAuth
// @Schemes
// @Description Create a client organization
// @Tags admin required
// @Accept json
// @param request body model.ClientForm true "Client Request"
// @Produce json
// @Success 200 {object} model.CommonResponse[model.Client]
// @Router /admin/clients [post]
func createClient(c *gin.Context) (*model.Client, error) {
	var cf model.ClientForm
	if err := c.ShouldBindJSON(&cf); err != nil {
		return nil, err
	}
	if cf.Name == "" {
		return nil, errors.New("client name can't be empty")
	}
	status := cf.Status
	if status == "" {
		status = model.ClientStatusOnboarding
	}
	if status != model.ClientStatusActive && status != model.ClientStatusOnboarding &&
		status != model.ClientStatusArchived {
		return nil, errors.New("unknown client status")
	}

	client := model.Client{
		Name:          cf.Name,
		Status:        status,
		DriveFolderID: cf.DriveFolderID,
	}
	if err := singleton.DB.Create(&client).Error; err != nil {
		return nil, newGormError("%v", err)
	}
	return &client, nil
}
