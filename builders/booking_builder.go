package builders

import (
	"strings"
	"time"

	"hotelinfo/constants"
	"hotelinfo/models"
)

// BookingBuilder assembles a booking step by step
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder starts a confirmed booking
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{Status: constants.BookingStatusConfirmed},
	}
}

func (b *BookingBuilder) WithUser(userID uint) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

func (b *BookingBuilder) WithRoom(roomID uint) *BookingBuilder {
	b.booking.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithCustomer(name string) *BookingBuilder {
	b.booking.CustomerName = strings.TrimSpace(name)
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckIn = checkIn
	b.booking.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithPayment(method string, totalCost float64) *BookingBuilder {
	b.booking.PaymentMethod = strings.TrimSpace(method)
	b.booking.TotalCost = totalCost
	return b
}

func (b *BookingBuilder) WithConfirmationNumber(number string) *BookingBuilder {
	b.booking.ConfirmationNumber = number
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.booking.Status = status
	return b
}

// Build returns the assembled booking
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
