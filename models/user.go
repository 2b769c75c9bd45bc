package models

import "time"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FirstName    string    `json:"firstName" gorm:"size:50"`
	LastName     string    `json:"lastName" gorm:"size:50"`
	Role         string    `json:"role" gorm:"size:10;not null;default:User"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// AllModels lists every table owned by the service in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&User{}, &City{}, &HotelAmenity{}, &RoomAmenity{}, &RoomClass{},
		&Hotel{}, &Room{}, &Photo{}, &Booking{},
	}
}
