package models

// Account is the minimal view of an identity-provider account as seen by
// this backend. Accounts are created and destroyed only by the provider.
type Account struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"name"`
	CreatedAt   string `json:"created_at,omitempty"` // RFC 3339; empty when the provider reports none
}

// AccountRecord is the merged admin-listing view of one identity: account
// data joined with the profile document and role assignment keyed by the
// same UID. Profile fields take precedence over provider fields.
//
// CreatedAt stays a string so that records without a timestamp sort
// deterministically (as the empty string, last under descending order).
type AccountRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	Roles     []Role `json:"roles"`
}
