package models

import "time"

// Profile holds the user-editable contact details for an account.
// The document ID is the account UID. Profiles are created lazily on first
// write and updated with merge semantics: fields absent from an update keep
// their stored values.
// The timestamps are pointers so a profile that was never written (or that
// is synthesized for a caller with no document) omits them from JSON rather
// than serializing the zero time.
type Profile struct {
	ID        string     `json:"id" firestore:"-"` // Account UID
	Name      string     `json:"name,omitempty" firestore:"name,omitempty"`
	Email     string     `json:"email,omitempty" firestore:"email,omitempty"`
	Phone     string     `json:"phone,omitempty" firestore:"phone,omitempty"`
	Address   string     `json:"address,omitempty" firestore:"address,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" firestore:"-"` // Document create time
	UpdatedAt *time.Time `json:"updated_at,omitempty" firestore:"-"` // Document update time
}
