package commands

import (
	"context"
	"time"

	"hotelinfo/models"
)

// BookingCommand is a unit of work against the booking store
type BookingCommand interface {
	Execute(ctx context.Context) error
}

type BookingCreator interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
}

type BookingCompleter interface {
	CompleteBookingsBefore(ctx context.Context, t time.Time) (int64, error)
}

// CreateBookingCommand stores a new booking
type CreateBookingCommand struct {
	booking *models.Booking
	store   BookingCreator
}

func NewCreateBookingCommand(booking *models.Booking, store BookingCreator) *CreateBookingCommand {
	return &CreateBookingCommand{
		booking: booking,
		store:   store,
	}
}

func (c *CreateBookingCommand) Execute(ctx context.Context) error {
	return c.store.CreateBooking(ctx, c.booking)
}

// CompleteBookingsCommand marks confirmed bookings that checked out before a
// cutoff as completed. Completed holds the count after Execute.
type CompleteBookingsCommand struct {
	before    time.Time
	store     BookingCompleter
	Completed int64
}

func NewCompleteBookingsCommand(before time.Time, store BookingCompleter) *CompleteBookingsCommand {
	return &CompleteBookingsCommand{
		before: before,
		store:  store,
	}
}

func (c *CompleteBookingsCommand) Execute(ctx context.Context) error {
	n, err := c.store.CompleteBookingsBefore(ctx, c.before)
	if err != nil {
		return err
	}
	c.Completed = n
	return nil
}
