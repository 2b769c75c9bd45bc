package commands

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hotelinfo/builders"
	"hotelinfo/constants"
	"hotelinfo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	created   []*models.Booking
	completed int64
	before    time.Time
	err       error
}

func (s *recordingStore) CreateBooking(_ context.Context, b *models.Booking) error {
	if s.err != nil {
		return s.err
	}
	b.ID = uint(len(s.created) + 1)
	s.created = append(s.created, b)
	return nil
}

func (s *recordingStore) CompleteBookingsBefore(_ context.Context, t time.Time) (int64, error) {
	s.before = t
	return s.completed, s.err
}

func TestCreateBookingCommand(t *testing.T) {
	in := time.Date(2024, 7, 1, 14, 0, 0, 0, time.UTC)
	booking := builders.NewBookingBuilder().
		WithUser(2).
		WithRoom(9).
		WithCustomer(" Sam ").
		WithStay(in, in.Add(48*time.Hour)).
		WithPayment(" Card ", 240).
		WithConfirmationNumber("20240601-0001").
		Build()

	assert.Equal(t, constants.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "Sam", booking.CustomerName)
	assert.Equal(t, "Card", booking.PaymentMethod)

	store := &recordingStore{}
	var cmd BookingCommand = NewCreateBookingCommand(booking, store)
	require.NoError(t, cmd.Execute(context.Background()))
	require.Len(t, store.created, 1)
	assert.Equal(t, uint(1), booking.ID)

	store.err = fmt.Errorf("insert failed")
	assert.Error(t, NewCreateBookingCommand(booking, store).Execute(context.Background()))
}

func TestCompleteBookingsCommand(t *testing.T) {
	cutoff := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	store := &recordingStore{completed: 4}

	cmd := NewCompleteBookingsCommand(cutoff, store)
	require.NoError(t, cmd.Execute(context.Background()))
	assert.Equal(t, int64(4), cmd.Completed)
	assert.Equal(t, cutoff, store.before)

	store.err = fmt.Errorf("timeout")
	cmd = NewCompleteBookingsCommand(cutoff, store)
	assert.Error(t, cmd.Execute(context.Background()))
	assert.Zero(t, cmd.Completed)
}

func TestBookingBuilder_WithStatus(t *testing.T) {
	b := builders.NewBookingBuilder().WithStatus(constants.BookingStatusCancelled).Build()
	assert.Equal(t, constants.BookingStatusCancelled, b.Status)
	assert.NoError(t, b.ValidateStatus())

	b = builders.NewBookingBuilder().WithStatus("Lost").Build()
	assert.Error(t, b.ValidateStatus())
}
