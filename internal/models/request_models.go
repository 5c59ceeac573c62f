package models

// CreateServiceRequest represents the request body for creating a service.
// Price is a pointer so a missing price can be told apart from a free (0) one.
type CreateServiceRequest struct {
	Title       string   `json:"title"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	ImageURL    string   `json:"image_url"`
	IsActive    *bool    `json:"is_active"` // Defaults to true when omitted
}

// UpdateServiceRequest represents the request body for updating a service.
// Pointers distinguish "clear this field" from "field not provided".
type UpdateServiceRequest struct {
	Title       *string  `json:"title,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Duration    *string  `json:"duration,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// CreateCategoryRequest represents the request body for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CreateBookingRequest represents the request body for creating a booking.
// Status, total_price and service_title are deliberately not accepted here:
// status is always forced to pending and price/title are snapshotted from
// the referenced service.
type CreateBookingRequest struct {
	ServiceID   string `json:"service_id"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
	Address     string `json:"address"`
}

// UpdateBookingRequest represents the request body for PATCHing a booking.
// Which fields are honored depends on the caller: owners may change date,
// time and address and request cancellation; admins may additionally set
// any status and adjust the total price.
type UpdateBookingRequest struct {
	BookingDate *string        `json:"booking_date,omitempty"`
	BookingTime *string        `json:"booking_time,omitempty"`
	Address     *string        `json:"address,omitempty"`
	Status      *BookingStatus `json:"status,omitempty"`
	TotalPrice  *float64       `json:"total_price,omitempty"`
}

// UpdateProfileRequest represents the request body for PUT /me.
// Only provided fields are written; the stored profile keeps the rest.
type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// SetRoleRequest represents the request body for assigning a role to a user.
type SetRoleRequest struct {
	Role Role `json:"role"`
}

// BookingStats summarizes a user's bookings for the profile dashboard.
type BookingStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}
