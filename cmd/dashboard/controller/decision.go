package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/service/singleton"
)

// List decisions
// @Summary List the client decision log
// @Security BearerAuth
// @Schemes
// @Description List the client decision log
// @Tags auth required
// @Produce json
// @Success 200 {object} model.CommonResponse[[]model.Decision]
// @Router /decisions [get]
func listDecisions(c *gin.Context) ([]model.Decision, error) {
	var decisions []model.Decision
	err := singleton.DB.Where("client_id = ?", currentUser(c).ClientID).
		Order("updated_at DESC").Find(&decisions).Error
	if err != nil {
		return nil, newGormError("%v", err)
	}
	return decisions, nil
}

// Pipeline board
// @Summary Decision pipeline board with per-status counts
// @Security BearerAuth
// @Schemes
// @Description Decision pipeline board with per-status counts
// @Tags admin required
// @Produce json
// @Success 200 {object} model.CommonResponse[model.PipelineBoard]
// @Router /admin/pipeline [get]
func getPipeline(c *gin.Context) (*model.PipelineBoard, error) {
	var decisions []model.Decision
	if err := singleton.DB.Order("updated_at DESC").Find(&decisions).Error; err != nil {
		return nil, newGormError("%v", err)
	}

	counts := map[string]int{
		model.DecisionStatusDraft:   0,
		model.DecisionStatusPending: 0,
		model.DecisionStatusReview:  0,
		model.DecisionStatusAligned: 0,
	}
	for _, d := range decisions {
		counts[d.Status]++
	}
	return &model.PipelineBoard{Decisions: decisions, Counts: counts}, nil
}

// Create decision
// @Summary Create a decision in a client log
// @Security BearerAuth
// @Schemes
// @Description Create a decision in a client log
// @Tags admin required
// @Accept json
// @param request body model.DecisionForm true "Decision Request"
// @Produce json
// @Success 200 {object} model.CommonResponse[model.Decision]
// @Router /admin/decisions [post]
func createDecision(c *gin.Context) (*model.Decision, error) {
	var df model.DecisionForm
	if err := c.ShouldBindJSON(&df); err != nil {
		return nil, err
	}
	if df.Title == "" {
		return nil, errors.New("title can't be empty")
	}
	if df.ClientID == 0 {
		return nil, errors.New("decision needs a client")
	}

	d := model.Decision{
		ClientID:  df.ClientID,
		Title:     df.Title,
		Status:    model.DecisionStatusDraft,
		Rationale: df.Rationale,
		Category:  df.Category,
		UpdatedBy: currentUser(c).ID,
	}
	if err := singleton.DB.Create(&d).Error; err != nil {
		return nil, newGormError("%v", err)
	}
	return &d, nil
}

// Edit decision
// @Summary Edit a decision, moving it along the pipeline
// @Security BearerAuth
// @Schemes
// @Description Edit a decision, moving it along the pipeline
// @Tags admin required
// @Accept json
// @Param id path uint true "Decision ID"
// @param request body model.DecisionForm true "Decision Request"
// @Produce json
// @Success 200 {object} model.CommonResponse[model.Decision]
// @Router /admin/decisions/{id} [patch]
func updateDecision(c *gin.Context) (*model.Decision, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}
	var df model.DecisionForm
	if err := c.ShouldBindJSON(&df); err != nil {
		return nil, err
	}

	var d model.Decision
	if err := singleton.DB.First(&d, id).Error; err != nil {
		return nil, newGormError("%v", err)
	}

	if df.Status != "" && df.Status != d.Status {
		if !model.IsDecisionStatus(df.Status) {
			return nil, errors.New("unknown pipeline status")
		}
		if !model.CanTransition(d.Status, df.Status) {
			return nil, errors.New("invalid pipeline transition " + d.Status + " -> " + df.Status)
		}
		d.Status = df.Status
	}
	if df.Title != "" {
		d.Title = df.Title
	}
	if df.Rationale != "" {
		d.Rationale = df.Rationale
	}
	if df.Category != "" {
		d.Category = df.Category
	}
	d.UpdatedBy = currentUser(c).ID

	if err := singleton.DB.Save(&d).Error; err != nil {
		return nil, newGormError("%v", err)
	}
	return &d, nil
}
