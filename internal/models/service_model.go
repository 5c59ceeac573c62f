package models

// Service represents a bookable service offered through the platform.
// The firestore tags carry no omitempty: updates are full document
// write-backs, and clearing a field to "" must persist the empty value
// instead of dropping the field.
type Service struct {
	ID          string  `json:"id" firestore:"-"` // Document ID, auto-generated
	Title       string  `json:"title" firestore:"title"`
	Price       float64 `json:"price" firestore:"price"`
	Category    string  `json:"category,omitempty" firestore:"category"`
	Description string  `json:"description,omitempty" firestore:"description"`
	Duration    string  `json:"duration,omitempty" firestore:"duration"`
	ImageURL    string  `json:"image_url,omitempty" firestore:"image_url"`
	IsActive    bool    `json:"is_active" firestore:"is_active"`
	CreatedBy   string  `json:"created_by,omitempty" firestore:"created_by"` // UID of the admin who created it
}
