package models

import "strings"

// BookingStatus is the lifecycle state of a booking. Provider endpoints
// report it in lower case, customer and admin endpoints in upper case, so
// compare with Is rather than ==.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// Is reports whether s equals other ignoring case.
func (s BookingStatus) Is(other BookingStatus) bool {
	return strings.EqualFold(string(s), string(other))
}

// Terminal reports whether no further transitions are possible.
func (s BookingStatus) Terminal() bool {
	return s.Is(StatusCompleted) || s.Is(StatusCancelled)
}

// Upper returns the status in the casing the customer and admin endpoints use.
func (s BookingStatus) Upper() BookingStatus {
	return BookingStatus(strings.ToUpper(string(s)))
}

// AccountStatus is the admin-managed state of a user or provider account.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountInactive  AccountStatus = "INACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
	AccountPending   AccountStatus = "PENDING_VERIFICATION"
)
