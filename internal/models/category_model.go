package models

// Category groups services under a display name.
type Category struct {
	ID   string `json:"id" firestore:"-"` // Document ID, auto-generated
	Name string `json:"name" firestore:"name"`
}
