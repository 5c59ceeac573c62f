package core

import (
	"bookify-backend-go/internal/models"
)

// Caller is the resolved identity of the requester. A zero ID means the
// request carried no verified identity. Role is always populated when ID is
// set; an identifier with no role assignment resolves to models.DefaultRole.
type Caller struct {
	ID   string
	Role models.Role
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

// Action names an operation for the access policy gate.
type Action string

const (
	ActionListServices  Action = "services.list"
	ActionGetService    Action = "services.get"
	ActionCreateService Action = "services.create"
	ActionUpdateService Action = "services.update"
	ActionDeleteService Action = "services.delete"

	ActionListCategories Action = "categories.list"
	ActionCreateCategory Action = "categories.create"
	ActionDeleteCategory Action = "categories.delete"

	ActionCreateBooking   Action = "bookings.create"
	ActionUpdateBooking   Action = "bookings.update"
	ActionListOwnBookings Action = "bookings.list_own"
	ActionListAllBookings Action = "bookings.list_all"

	ActionReadOwnProfile   Action = "profile.read"
	ActionUpdateOwnProfile Action = "profile.update"

	ActionListAccounts Action = "accounts.list"
	ActionSetRole      Action = "accounts.set_role"
)

// Authorize is the single policy decision point. Rules are evaluated in
// order: public reads pass with no caller; every other action requires a
// resolved identity; admin-only actions require the admin role; booking
// updates pass for the admin or the booking owner (the owner-permitted
// field set is enforced by the booking service, not here). Anything not
// explicitly allowed is denied.
//
// resourceOwner is only consulted for ActionUpdateBooking and may be empty
// for every other action.
func Authorize(caller Caller, action Action, resourceOwner string) error {
	switch action {
	case ActionListServices, ActionGetService, ActionListCategories:
		// Public reads, no caller required.
		return nil
	}

	if caller.ID == "" {
		return ErrAuthRequired
	}

	switch action {
	case ActionCreateService, ActionUpdateService, ActionDeleteService,
		ActionCreateCategory, ActionDeleteCategory,
		ActionListAllBookings, ActionListAccounts, ActionSetRole:
		if !caller.IsAdmin() {
			return ErrAdminRequired
		}
		return nil

	case ActionCreateBooking, ActionListOwnBookings,
		ActionReadOwnProfile, ActionUpdateOwnProfile:
		// Self-scoped: the operation only ever touches the caller's own data.
		return nil

	case ActionUpdateBooking:
		if caller.IsAdmin() {
			return nil
		}
		if resourceOwner != "" && resourceOwner == caller.ID {
			return nil
		}
		return ErrForbidden
	}

	// Unrecognized action: deny.
	return ErrForbidden
}
