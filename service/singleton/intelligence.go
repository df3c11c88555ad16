package singleton

import (
	"time"

	"gorm.io/gorm"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
)

// assistantReply is the stubbed Brand Intelligence response. Response
// generation is an external concern; the portal only persists the
// exchange.
const assistantReply = "You should use precise language and factual statements " +
	"while keeping sentences concise and human, avoiding jargon or overly " +
	"corporate phrasing."

const conversationTitleLen = 30
const lastMessagePreviewLen = 50

// SendIntelligenceMessage persists the user prompt and the assistant
// reply in one transaction, creating the conversation on first message
// and refreshing its preview metadata.
func SendIntelligenceMessage(user *model.Profile, form model.AIMessageForm) (*model.AIMessageResponse, error) {
	var resp model.AIMessageResponse

	err := DB.Transaction(func(tx *gorm.DB) error {
		var conv model.AIConversation
		if form.ConversationID == 0 {
			conv = model.AIConversation{
				UserID:   user.ID,
				ClientID: user.ClientID,
				Title:    truncate(form.Content, conversationTitleLen) + "...",
			}
			if err := tx.Create(&conv).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("id = ? AND user_id = ?", form.ConversationID, user.ID).
				First(&conv).Error; err != nil {
				return err
			}
		}

		userMsg := model.AIMessage{
			ConversationID: conv.ID,
			UserID:         user.ID,
			Role:           model.AIRoleUser,
			Content:        form.Content,
		}
		if err := tx.Create(&userMsg).Error; err != nil {
			return err
		}

		reply := assistantReply
		assistantMsg := model.AIMessage{
			ConversationID: conv.ID,
			UserID:         user.ID,
			Role:           model.AIRoleAssistant,
			Content:        reply,
		}
		if err := tx.Create(&assistantMsg).Error; err != nil {
			return err
		}

		if err := tx.Model(&conv).Updates(map[string]interface{}{
			"last_message": truncate(reply, lastMessagePreviewLen),
			"updated_at":   time.Now(),
		}).Error; err != nil {
			return err
		}

		resp = model.AIMessageResponse{
			ConversationID: conv.ID,
			UserMessage:    userMsg,
			Assistant:      assistantMsg,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyIntelligenceSubscribers(&resp)
	return &resp, nil
}

// ListConversations returns the user's conversations, most recently
// active first.
func ListConversations(userID uint64) ([]model.AIConversation, error) {
	var convs []model.AIConversation
	err := DB.Where("user_id = ?", userID).
		Order("updated_at DESC").Find(&convs).Error
	return convs, err
}

// ListMessages returns a conversation's messages oldest-first, after
// checking the conversation belongs to the user.
func ListMessages(userID, conversationID uint64) ([]model.AIMessage, error) {
	var conv model.AIConversation
	if err := DB.Where("id = ? AND user_id = ?", conversationID, userID).
		First(&conv).Error; err != nil {
		return nil, err
	}
	var msgs []model.AIMessage
	err := DB.Where("conversation_id = ?", conversationID).
		Order("created_at").Find(&msgs).Error
	return msgs, err
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
