package models

import "time"

// Photo belongs to at most one of city, hotel, room or room class.
type Photo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	URL         string    `json:"url" gorm:"size:500;not null"`
	CityID      *uint     `json:"cityId" gorm:"index"`
	HotelID     *uint     `json:"hotelId" gorm:"index"`
	RoomID      *uint     `json:"roomId" gorm:"index"`
	RoomClassID *uint     `json:"roomClassId" gorm:"index"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
