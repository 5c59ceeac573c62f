package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// IsTerminal reports whether no further transition is permitted from s.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// IsValid reports whether s is one of the known booking states.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking represents a user's booking of a service.
// TotalPrice and ServiceTitle are snapshots captured from the service at
// creation time; they never track later changes to the service document.
type Booking struct {
	ID           string        `json:"id" firestore:"-"` // Document ID, auto-generated
	UserID       string        `json:"user_id" firestore:"user_id"` // UID of the owner, set at creation
	ServiceID    string        `json:"service_id" firestore:"service_id"`
	BookingDate  string        `json:"booking_date" firestore:"booking_date"` // ISO date string
	BookingTime  string        `json:"booking_time" firestore:"booking_time"`
	Address      string        `json:"address" firestore:"address"`
	TotalPrice   float64       `json:"total_price" firestore:"total_price"`
	ServiceTitle string        `json:"service_title" firestore:"service_title"`
	Status       BookingStatus `json:"status" firestore:"status"`
	CreatedAt    time.Time     `json:"created_at" firestore:"created_at"`
}
