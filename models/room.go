package models

import "time"

type Room struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	RoomNumber    string        `json:"roomNumber" gorm:"size:50;not null"`
	Cost          *float64      `json:"cost"`
	HotelID       uint          `json:"hotelId" gorm:"not null;index"`
	RoomClassID   *uint         `json:"roomClassId" gorm:"index"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Hotel         *Hotel        `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	RoomClass     *RoomClass    `json:"roomClass,omitempty" gorm:"foreignKey:RoomClassID"`
	Photos        []Photo       `json:"photos" gorm:"foreignKey:RoomID"`
	RoomAmenities []RoomAmenity `json:"roomAmenities" gorm:"many2many:room_room_amenities;"`
}

// EffectiveCost returns the room's own cost, falling back to its room class.
func (r *Room) EffectiveCost() float64 {
	if r.Cost != nil {
		return *r.Cost
	}
	if r.RoomClass != nil {
		return r.RoomClass.StandardCost
	}
	return 0
}
