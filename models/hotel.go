package models

import "time"

type Hotel struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	Name             string         `json:"name" gorm:"size:50;not null;index"`
	Description      string         `json:"description" gorm:"size:500"`
	HotelType        int            `json:"hotelType" gorm:"default:0"`
	StarRating       int            `json:"starRating" gorm:"default:0"`
	Latitude         float64        `json:"latitude"`
	Longitude        float64        `json:"longitude"`
	ThumbnailImageID *uint          `json:"thumbnailImageId"`
	CityID           uint           `json:"cityId" gorm:"not null;index"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	City             *City          `json:"city,omitempty" gorm:"foreignKey:CityID"`
	Rooms            []Room         `json:"rooms" gorm:"foreignKey:HotelID"`
	Photos           []Photo        `json:"photos" gorm:"foreignKey:HotelID"`
	HotelAmenities   []HotelAmenity `json:"hotelAmenities" gorm:"many2many:hotel_hotel_amenities;"`
}
