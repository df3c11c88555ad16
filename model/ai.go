package model

const (
	AIRoleUser      = "user"
	AIRoleAssistant = "assistant"
)

type AIConversation struct {
	Common
	UserID      uint64 `json:"user_id" gorm:"index"`
	ClientID    uint64 `json:"client_id" gorm:"index"`
	Title       string `json:"title"`
	LastMessage string `json:"last_message"`
}

type AIMessage struct {
	Common
	ConversationID uint64 `json:"conversation_id" gorm:"index"`
	UserID         uint64 `json:"user_id"`
	Role           string `json:"role"`
	Content        string `json:"content" gorm:"type:longtext"`
}

type AIMessageForm struct {
	ConversationID uint64 `json:"conversation_id,omitempty"`
	Content        string `json:"content"`
}

// AIMessageResponse returns both sides of one exchange, plus the
// conversation id so a first message can adopt the new conversation.
type AIMessageResponse struct {
	ConversationID uint64    `json:"conversation_id"`
	UserMessage    AIMessage `json:"user_message"`
	Assistant      AIMessage `json:"assistant_message"`
}
