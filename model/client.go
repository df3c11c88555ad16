package model

const (
	ClientStatusActive     = "active"
	ClientStatusOnboarding = "onboarding"
	ClientStatusArchived   = "archived"
)

// Client is a tenant organization using the portal.
type Client struct {
	Common
	Name          string `json:"name"`
	Status        string `json:"status"`
	DriveFolderID string `json:"drive_folder_id,omitempty"`
}
