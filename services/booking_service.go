package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"hotelinfo/builders"
	"hotelinfo/commands"
	"hotelinfo/dto"
	"hotelinfo/errors"
	"hotelinfo/models"
	"hotelinfo/services/logger"
	"hotelinfo/services/notification"
	"hotelinfo/validator"
)

// BookingStore is the part of the repository the booking facade needs.
type BookingStore interface {
	GetRoom(ctx context.Context, id uint) (*models.Room, error)
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	NextConfirmationSequence(ctx context.Context, prefix string) (int, error)
	HasOverlappingBooking(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error)
}

// confirmationAttempts bounds retries when a concurrent booking takes the
// same confirmation number.
const confirmationAttempts = 5

// BookingFacade validates, prices, stores and announces bookings.
type BookingFacade struct {
	store    BookingStore
	notifier notification.Service
	logger   logger.Logger
	now      func() time.Time
}

type BookingFacadeOptions struct {
	Store    BookingStore
	Notifier notification.Service
	Logger   logger.Logger
	// Now overrides the clock; defaults to time.Now.
	Now func() time.Time
}

func NewBookingFacade(opts BookingFacadeOptions) *BookingFacade {
	f := &BookingFacade{
		store:    opts.Store,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		now:      opts.Now,
	}
	if f.notifier == nil {
		f.notifier = notification.NopService{}
	}
	if f.now == nil {
		f.now = time.Now
	}
	return f
}

// CreateBooking books the requested room for userID.
func (f *BookingFacade) CreateBooking(ctx context.Context, userID uint, req dto.BookingRequest) (*models.Booking, error) {
	if err := validator.ValidateStay(req.CheckIn, req.CheckOut); err != nil {
		return nil, err
	}

	room, err := f.store.GetRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	taken, err := f.store.HasOverlappingBooking(ctx, room.ID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, errors.ErrRoomUnavailable.Error(), errors.ErrRoomUnavailable)
	}

	now := f.now()
	prefix := now.Format("20060102") + "-"
	var booking *models.Booking
	for attempt := 1; ; attempt++ {
		seq, err := f.store.NextConfirmationSequence(ctx, prefix)
		if err != nil {
			return nil, err
		}
		booking = builders.NewBookingBuilder().
			WithUser(userID).
			WithRoom(room.ID).
			WithCustomer(req.CustomerName).
			WithStay(req.CheckIn, req.CheckOut).
			WithPayment(req.PaymentMethod, TotalCost(room.EffectiveCost(), req.CheckIn, req.CheckOut)).
			WithConfirmationNumber(ConfirmationNumber(now, seq)).
			Build()
		err = commands.NewCreateBookingCommand(booking, f.store).Execute(ctx)
		if err == nil {
			break
		}
		if !errors.Is(err, errors.ErrDuplicate) || attempt == confirmationAttempts {
			return nil, err
		}
		f.logger.Debug("confirmation number %s taken, retrying", booking.ConfirmationNumber)
	}

	f.announce(booking)

	created, err := f.store.GetBooking(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetBooking returns the booking when userID owns it or isAdmin is set.
// Bookings of other users read as not found.
func (f *BookingFacade) GetBooking(ctx context.Context, id, userID uint, isAdmin bool) (*models.Booking, error) {
	booking, err := f.store.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && booking.UserID != userID {
		return nil, errors.ErrNotFound
	}
	return booking, nil
}

func (f *BookingFacade) announce(b *models.Booking) {
	msg, err := notification.NewBookingCreatedMessage(dto.BookingEvent{
		BookingID:          b.ID,
		ConfirmationNumber: b.ConfirmationNumber,
		RoomID:             b.RoomID,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
	}).Build()
	if err != nil {
		f.logger.Error("build booking event: %v", err)
		return
	}
	if err := f.notifier.SendMessage(msg); err != nil {
		f.logger.Error("broadcast booking %s: %v", b.ConfirmationNumber, err)
	}
}

// ConfirmationNumber formats yyyyMMdd-NNNN.
func ConfirmationNumber(day time.Time, seq int) string {
	return fmt.Sprintf("%s-%04d", day.Format("20060102"), seq)
}

// Nights counts started nights between check-in and check-out, at least one.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

func TotalCost(nightly float64, checkIn, checkOut time.Time) float64 {
	return math.Round(nightly*float64(Nights(checkIn, checkOut))*100) / 100
}
