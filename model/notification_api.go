package model

// PreferenceUpdate carries one touched toggle: the preference row id
// and its new value.
type PreferenceUpdate struct {
	ID      uint64 `json:"id"`
	Checked bool   `json:"checked"`
}

// PreferenceForm is the batch save body. Only entries the user
// actually touched are submitted; untouched rows are never rewritten.
type PreferenceForm struct {
	Entries []PreferenceUpdate `json:"entries"`
}
