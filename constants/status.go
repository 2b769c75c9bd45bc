package constants

import "time"

// User roles
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Booking status
const (
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
	BookingStatusCompleted = "Completed"
)

// Hotel type
const (
	HotelTypeBoutique = 0
	HotelTypeBudget   = 1
	HotelTypeLuxury   = 2
)

// Pagination
const (
	MaxPageSize       = 20
	DefaultPageSize   = 10
	DefaultPageNumber = 1
)

// Cache keys. Every key of a resource family starts with its prefix so a
// mutation can drop the whole family.
const (
	CacheKeyCities          = "cities:"
	CacheKeyHotels          = "hotels:"
	CacheKeySearchAmenities = "search:amenities"
	CacheTTL                = 10 * time.Minute
)

// Context keys set by the auth middleware
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextUserRole = "userRole"
)

var HotelTypeNames = map[int]string{
	HotelTypeBoutique: "Boutique",
	HotelTypeBudget:   "Budget",
	HotelTypeLuxury:   "Luxury",
}
