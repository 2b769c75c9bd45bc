package models

import (
	"fmt"
	"time"

	"hotelinfo/constants"

	"gorm.io/gorm"
)

type Booking struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	ConfirmationNumber string    `json:"confirmationNumber" gorm:"size:20;uniqueIndex"`
	UserID             uint      `json:"userId" gorm:"index"`
	RoomID             uint      `json:"roomId" gorm:"not null;index"`
	CustomerName       string    `json:"customerName" gorm:"size:100;not null"`
	CheckIn            time.Time `json:"checkIn"`
	CheckOut           time.Time `json:"checkOut" gorm:"index"`
	TotalCost          float64   `json:"totalCost"`
	PaymentMethod      string    `json:"paymentMethod" gorm:"size:50"`
	Status             string    `json:"status" gorm:"size:20;default:Confirmed;index"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Room               *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

func (b *Booking) ValidateStatus() error {
	switch b.Status {
	case constants.BookingStatusConfirmed, constants.BookingStatusCancelled, constants.BookingStatusCompleted:
		return nil
	}
	return fmt.Errorf("invalid status: %s", b.Status)
}

// BeforeCreate defaults the status to Confirmed and rejects unknown statuses.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = constants.BookingStatusConfirmed
	}
	return b.ValidateStatus()
}
