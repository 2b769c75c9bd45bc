package repository

import (
	"context"
	"fmt"
	"time"

	"hotelinfo/constants"
	"hotelinfo/errors"
	"hotelinfo/models"
)

type BookingFilter struct {
	// UserID limits the list to one user's bookings when set.
	UserID     *uint
	PageNumber int
	PageSize   int
}

func (r *Repository) ListBookings(ctx context.Context, f BookingFilter) ([]models.Booking, PaginationMetaData, error) {
	q := r.db.WithContext(ctx).Model(&models.Booking{})
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	return findPage[models.Booking](q, f.PageNumber, f.PageSize, "check_in DESC, id DESC", "Room", "Room.Hotel", "Room.RoomClass")
}

func (r *Repository) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.first(ctx, &booking, id, "Room", "Room.Hotel", "Room.RoomClass"); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateBooking inserts booking. A confirmation number that is already taken
// yields errors.ErrDuplicate.
func (r *Repository) CreateBooking(ctx context.Context, booking *models.Booking) error {
	if err := r.db.WithContext(ctx).Omit("Room").Create(booking).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("booking %s: %w", booking.ConfirmationNumber, errors.ErrDuplicate)
		}
		return err
	}
	return nil
}

// NextConfirmationSequence returns one past the highest sequence used by
// confirmation numbers starting with prefix.
func (r *Repository) NextConfirmationSequence(ctx context.Context, prefix string) (int, error) {
	var highest int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Select("COALESCE(MAX(CAST(SUBSTR(confirmation_number, ?) AS INTEGER)), 0)", len(prefix)+1).
		Where("confirmation_number LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%").
		Scan(&highest).Error
	if err != nil {
		return 0, err
	}
	return int(highest) + 1, nil
}

// HasOverlappingBooking reports whether a booking that is not cancelled holds
// the room for any night between checkIn and checkOut.
func (r *Repository) HasOverlappingBooking(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("room_id = ? AND status <> ? AND check_in < ? AND check_out > ?",
			roomID, constants.BookingStatusCancelled, checkOut, checkIn).
		Count(&count).Error
	return count > 0, err
}

// CompleteBookingsBefore marks confirmed bookings that checked out before t as completed.
func (r *Repository) CompleteBookingsBefore(ctx context.Context, t time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("status = ? AND check_out < ?", constants.BookingStatusConfirmed, t).
		Update("status", constants.BookingStatusCompleted)
	return res.RowsAffected, res.Error
}
