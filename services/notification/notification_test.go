package notification

import (
	"testing"
	"time"

	"hotelinfo/dto"

	"github.com/olahol/melody"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCreatedMessage(t *testing.T) {
	msg, err := NewBookingCreatedMessage(dto.BookingEvent{
		BookingID:          4,
		ConfirmationNumber: "20240601-0004",
		RoomID:             2,
		CheckIn:            time.Date(2024, 7, 1, 14, 0, 0, 0, time.UTC),
		CheckOut:           time.Date(2024, 7, 2, 11, 0, 0, 0, time.UTC),
	}).Build()
	require.NoError(t, err)
	assert.Contains(t, msg, `"type":"booking.created"`)
	assert.Contains(t, msg, `"confirmationNumber":"20240601-0004"`)
}

func TestMelodyService(t *testing.T) {
	assert.Error(t, NewMelodyService(nil).SendMessage("x"))
	assert.NoError(t, NewMelodyService(melody.New()).SendMessage("x"))
	assert.NoError(t, NopService{}.SendMessage("x"))
}
