package model

const (
	DecisionStatusDraft   = "draft"
	DecisionStatusPending = "pending"
	DecisionStatusReview  = "review"
	DecisionStatusAligned = "aligned"
)

// Decision is one strategic decision in a client's log.
type Decision struct {
	Common
	ClientID  uint64 `json:"client_id" gorm:"index"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Rationale string `json:"rationale" gorm:"type:longtext"`
	Category  string `json:"category"`
	UpdatedBy uint64 `json:"updated_by"`
}

// decisionFlow is the approval pipeline: draft -> pending -> review -> aligned.
// A decision may also be sent back one step for rework.
var decisionFlow = map[string][]string{
	DecisionStatusDraft:   {DecisionStatusPending},
	DecisionStatusPending: {DecisionStatusReview, DecisionStatusDraft},
	DecisionStatusReview:  {DecisionStatusAligned, DecisionStatusPending},
	DecisionStatusAligned: {},
}

// CanTransition reports whether a decision may move from one pipeline
// status to another.
func CanTransition(from, to string) bool {
	for _, next := range decisionFlow[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsDecisionStatus reports whether s names a known pipeline status.
func IsDecisionStatus(s string) bool {
	_, ok := decisionFlow[s]
	return ok
}
