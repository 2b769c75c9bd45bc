package models

import "time"

type City struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"size:50;not null;index"`
	Description      string    `json:"description" gorm:"size:500;not null"`
	ThumbnailImageID *uint     `json:"thumbnailImageId"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Hotels           []Hotel   `json:"hotels" gorm:"foreignKey:CityID"`
	Photos           []Photo   `json:"photos" gorm:"foreignKey:CityID"`
}
