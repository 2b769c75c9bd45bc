package repository

import (
	"context"

	"hotelinfo/models"

	"gorm.io/gorm"
)

var sampleCities = []models.City{
	{Name: "Ramallah", Description: "A vibrant city in the central West Bank."},
	{Name: "Los Angeles", Description: "The entertainment capital of the world."},
	{Name: "New York", Description: "The city that never sleeps."},
	{Name: "Denver", Description: "The Mile High City at the foot of the Rockies."},
	{Name: "San Francisco", Description: "Known for the Golden Gate Bridge and its hills."},
	{Name: "Paris", Description: "The city of light."},
	{Name: "Tokyo", Description: "A neon-lit capital mixing the ultramodern and the traditional."},
	{Name: "Cape Town", Description: "A port city beneath Table Mountain."},
}

var sampleRoomAmenities = []models.RoomAmenity{
	{Name: "Free Wi-Fi", Description: "High-speed wireless internet access."},
	{Name: "Air Conditioning", Description: "Individually controlled air conditioning."},
	{Name: "Mini Bar", Description: "Stocked mini bar with drinks and snacks."},
	{Name: "Flat-screen TV", Description: "Flat-screen TV with cable channels."},
	{Name: "Private Balcony", Description: "Balcony with outdoor seating."},
}

// SeedSampleData fills an empty database with demo cities and room amenities.
// It returns false when data already exists.
func (r *Repository) SeedSampleData(ctx context.Context) (bool, error) {
	seeded := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.City{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		cities := append([]models.City(nil), sampleCities...)
		if err := tx.Create(&cities).Error; err != nil {
			return err
		}
		amenities := append([]models.RoomAmenity(nil), sampleRoomAmenities...)
		if err := tx.Create(&amenities).Error; err != nil {
			return err
		}
		seeded = true
		return nil
	})
	return seeded, err
}
