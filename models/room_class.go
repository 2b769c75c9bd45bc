package models

import "time"

type RoomClass struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	StandardCost  float64       `json:"standardCost" gorm:"not null;default:0"`
	Description   string        `json:"description" gorm:"size:500"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms         []Room        `json:"rooms" gorm:"foreignKey:RoomClassID"`
	Photos        []Photo       `json:"photos" gorm:"foreignKey:RoomClassID"`
	RoomAmenities []RoomAmenity `json:"roomAmenities" gorm:"many2many:room_class_room_amenities;"`
}
