package repository

import (
	"context"

	"hotelinfo/models"

	"gorm.io/gorm"
)

func (r *Repository) ListHotelAmenities(ctx context.Context, f ListFilter) ([]models.HotelAmenity, PaginationMetaData, error) {
	q := r.db.WithContext(ctx).Model(&models.HotelAmenity{})
	q = whereContains(q, "name", f.Name)
	q = whereSearch(q, f.SearchQuery, "name", "description")
	return findPage[models.HotelAmenity](q, f.PageNumber, f.PageSize, "name, id")
}

func (r *Repository) GetHotelAmenity(ctx context.Context, id uint) (*models.HotelAmenity, error) {
	var amenity models.HotelAmenity
	if err := r.first(ctx, &amenity, id); err != nil {
		return nil, err
	}
	return &amenity, nil
}

func (r *Repository) CreateHotelAmenity(ctx context.Context, amenity *models.HotelAmenity) error {
	return r.db.WithContext(ctx).Create(amenity).Error
}

func (r *Repository) UpdateHotelAmenity(ctx context.Context, amenity *models.HotelAmenity) error {
	return r.db.WithContext(ctx).Save(amenity).Error
}

func (r *Repository) DeleteHotelAmenity(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM hotel_hotel_amenities WHERE hotel_amenity_id = ?", id).Error; err != nil {
			return err
		}
		return checkAffected(tx.Delete(&models.HotelAmenity{}, id))
	})
}

func (r *Repository) ListRoomAmenities(ctx context.Context, f ListFilter) ([]models.RoomAmenity, PaginationMetaData, error) {
	q := r.db.WithContext(ctx).Model(&models.RoomAmenity{})
	q = whereContains(q, "name", f.Name)
	q = whereSearch(q, f.SearchQuery, "name", "description")
	return findPage[models.RoomAmenity](q, f.PageNumber, f.PageSize, "name, id")
}

func (r *Repository) GetRoomAmenity(ctx context.Context, id uint) (*models.RoomAmenity, error) {
	var amenity models.RoomAmenity
	if err := r.first(ctx, &amenity, id); err != nil {
		return nil, err
	}
	return &amenity, nil
}

func (r *Repository) CreateRoomAmenity(ctx context.Context, amenity *models.RoomAmenity) error {
	return r.db.WithContext(ctx).Create(amenity).Error
}

func (r *Repository) UpdateRoomAmenity(ctx context.Context, amenity *models.RoomAmenity) error {
	return r.db.WithContext(ctx).Save(amenity).Error
}

func (r *Repository) DeleteRoomAmenity(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM room_room_amenities WHERE room_amenity_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM room_class_room_amenities WHERE room_amenity_id = ?", id).Error; err != nil {
			return err
		}
		return checkAffected(tx.Delete(&models.RoomAmenity{}, id))
	})
}

// ListDistinctRoomAmenities returns one amenity per name, ordered by name.
func (r *Repository) ListDistinctRoomAmenities(ctx context.Context) ([]models.RoomAmenity, error) {
	var all []models.RoomAmenity
	if err := r.db.WithContext(ctx).Order("name, id").Find(&all).Error; err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(all))
	out := make([]models.RoomAmenity, 0, len(all))
	for _, a := range all {
		if seen[a.Name] {
			continue
		}
		seen[a.Name] = true
		out = append(out, a)
	}
	return out, nil
}
