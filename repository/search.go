package repository

import (
	"context"

	"hotelinfo/models"

	"gorm.io/gorm"
)

// SearchCandidates loads every hotel with what the search scorer reads.
func (r *Repository) SearchCandidates(ctx context.Context) ([]models.Hotel, error) {
	hotels := make([]models.Hotel, 0)
	err := r.db.WithContext(ctx).
		Preload("City").
		Preload("HotelAmenities").
		Preload("Rooms").
		Preload("Rooms.RoomClass").
		Preload("Rooms.RoomAmenities").
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&hotels).Error
	return hotels, err
}
