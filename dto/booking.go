package dto

import (
	"time"

	"hotelinfo/models"
)

type BookingRequest struct {
	RoomID        uint      `json:"roomId" binding:"required"`
	CustomerName  string    `json:"customerName" binding:"required,max=100"`
	CheckIn       time.Time `json:"checkIn" binding:"required"`
	CheckOut      time.Time `json:"checkOut" binding:"required"`
	PaymentMethod string    `json:"paymentMethod" binding:"max=50"`
}

type BookingDetailsDto struct {
	ID                 uint      `json:"id"`
	ConfirmationNumber string    `json:"confirmationNumber"`
	BookingStatus      string    `json:"bookingStatus"`
	CustomerName       string    `json:"customerName"`
	HotelName          string    `json:"hotelName"`
	RoomNumber         string    `json:"roomNumber"`
	RoomType           string    `json:"roomType"`
	CheckIn            time.Time `json:"checkIn"`
	CheckOut           time.Time `json:"checkOut"`
	BookingDateTime    time.Time `json:"bookingDateTime"`
	TotalCost          float64   `json:"totalCost"`
	PaymentMethod      string    `json:"paymentMethod"`
}

func ToBookingDetailsDto(b models.Booking) BookingDetailsDto {
	out := BookingDetailsDto{
		ID:                 b.ID,
		ConfirmationNumber: b.ConfirmationNumber,
		BookingStatus:      b.Status,
		CustomerName:       b.CustomerName,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		BookingDateTime:    b.CreatedAt,
		TotalCost:          b.TotalCost,
		PaymentMethod:      b.PaymentMethod,
	}
	if b.Room != nil {
		out.RoomNumber = b.Room.RoomNumber
		if b.Room.Hotel != nil {
			out.HotelName = b.Room.Hotel.Name
		}
		if b.Room.RoomClass != nil {
			out.RoomType = b.Room.RoomClass.Description
		}
	}
	return out
}

func ToBookingDetailsDtoList(bookings []models.Booking) []BookingDetailsDto {
	out := make([]BookingDetailsDto, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToBookingDetailsDto(b))
	}
	return out
}

// BookingEvent is broadcast over the websocket feed
type BookingEvent struct {
	Type               string    `json:"type"`
	BookingID          uint      `json:"bookingId"`
	ConfirmationNumber string    `json:"confirmationNumber"`
	RoomID             uint      `json:"roomId"`
	CheckIn            time.Time `json:"checkIn"`
	CheckOut           time.Time `json:"checkOut"`
}
