package model

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

type UserForm struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Role     uint8  `json:"role,omitempty"`
	ClientID uint64 `json:"client_id,omitempty"`
}

type ProfileForm struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
	Language    string `json:"language,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// Validate rejects unknown timezone and language values before they
// reach the profile row. Empty fields are untouched and pass.
func (pf *ProfileForm) Validate() error {
	if pf.Timezone != "" {
		if _, err := time.LoadLocation(pf.Timezone); err != nil {
			return fmt.Errorf("unknown timezone %q", pf.Timezone)
		}
	}
	if pf.Language != "" {
		if _, err := language.Parse(pf.Language); err != nil {
			return fmt.Errorf("unknown language tag %q", pf.Language)
		}
	}
	return nil
}

type PasswordForm struct {
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
}

type MFACodeForm struct {
	Code string `json:"code"`
}

type MFAEnrollResponse struct {
	Secret          string `json:"secret"`
	ProvisioningURI string `json:"provisioning_uri"`
}

type RecoveryCodesResponse struct {
	Codes []string `json:"codes"`
}

type ClientForm struct {
	Name          string `json:"name,omitempty"`
	Status        string `json:"status,omitempty"`
	DriveFolderID string `json:"drive_folder_id,omitempty"`
}
