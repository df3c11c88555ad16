package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/service/singleton"
)

// List conversations
// @Summary List brand intelligence conversations
// @Security BearerAuth
// @Schemes
// @Description List brand intelligence conversations
// @Tags auth required
// @Produce json
// @Success 200 {object} model.CommonResponse[[]model.AIConversation]
// @Router /intelligence/conversations [get]
func listConversations(c *gin.Context) ([]model.AIConversation, error) {
	convs, err := singleton.ListConversations(currentUser(c).ID)
	if err != nil {
		return nil, newGormError("%v", err)
	}
	return convs, nil
}

// List messages
// @Summary List the messages of one conversation
// @Security BearerAuth
// @Schemes
// @Description List the messages of one conversation
// @Tags auth required
// @Param id path uint true "Conversation ID"
// @Produce json
// @Success 200 {object} model.CommonResponse[[]model.AIMessage]
// @Router /intelligence/conversations/{id}/messages [get]
func listMessages(c *gin.Context) ([]model.AIMessage, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}
	msgs, err := singleton.ListMessages(currentUser(c).ID, id)
	if err != nil {
		return nil, errors.New("conversation not found")
	}
	return msgs, nil
}

// Post message
// @Summary Send a brand intelligence message
// @Security BearerAuth
// @Schemes
// @Description Send a brand intelligence message
// @Tags auth required
// @Accept json
// @param request body model.AIMessageForm true "Message Request"
// @Produce json
// @Success 200 {object} model.CommonResponse[model.AIMessageResponse]
// @Router /intelligence/messages [post]
func postIntelligenceMessage(c *gin.Context) (*model.AIMessageResponse, error) {
	var mf model.AIMessageForm
	if err := c.ShouldBindJSON(&mf); err != nil {
		return nil, err
	}
	if mf.Content == "" {
		return nil, errors.New("message can't be empty")
	}
	return singleton.SendIntelligenceMessage(currentUser(c), mf)
}
