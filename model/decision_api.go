package model

type DecisionForm struct {
	ClientID  uint64 `json:"client_id,omitempty"`
	Title     string `json:"title,omitempty"`
	Rationale string `json:"rationale,omitempty"`
	Category  string `json:"category,omitempty"`
	Status    string `json:"status,omitempty"`
}

// PipelineBoard is the admin approval-pipeline view: decisions plus
// per-status counts.
type PipelineBoard struct {
	Decisions []Decision     `json:"decisions"`
	Counts    map[string]int `json:"counts"`
}
