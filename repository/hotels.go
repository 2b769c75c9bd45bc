package repository

import (
	"context"

	"hotelinfo/errors"
	"hotelinfo/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *Repository) ListHotels(ctx context.Context, f ListFilter) ([]models.Hotel, PaginationMetaData, error) {
	q := r.db.WithContext(ctx).Model(&models.Hotel{})
	q = whereContains(q, "name", f.Name)
	q = whereSearch(q, f.SearchQuery, "name", "description")
	return findPage[models.Hotel](q, f.PageNumber, f.PageSize, "name, id")
}

func (r *Repository) GetHotel(ctx context.Context, id uint, includeRooms bool) (*models.Hotel, error) {
	var hotel models.Hotel
	q := r.db.WithContext(ctx)
	if includeRooms {
		q = q.Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).Preload("Rooms.RoomClass")
	}
	if err := q.First(&hotel, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &hotel, nil
}

func (r *Repository) HotelExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.Hotel{}, id)
}

func (r *Repository) UpdateHotel(ctx context.Context, hotel *models.Hotel) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(hotel).Error
}

func (r *Repository) DeleteHotel(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteHotelTx(tx, id)
	})
}

func (r *Repository) ListRoomsForHotel(ctx context.Context, hotelID uint) ([]models.Room, error) {
	rooms := make([]models.Room, 0)
	err := r.db.WithContext(ctx).Preload("RoomClass").Where("hotel_id = ?", hotelID).Order("id").Find(&rooms).Error
	return rooms, err
}

func (r *Repository) AddRoomForHotel(ctx context.Context, hotelID uint, room *models.Room) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireParent(tx, &models.Hotel{}, hotelID); err != nil {
			return err
		}
		room.HotelID = hotelID
		return tx.Create(room).Error
	})
}

func (r *Repository) DeleteRoomForHotel(ctx context.Context, hotelID, roomID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Room{}).Where("id = ? AND hotel_id = ?", roomID, hotelID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errors.ErrNotFound
		}
		return deleteRoomsTx(tx, []uint{roomID})
	})
}

func (r *Repository) ListHotelAmenitiesForHotel(ctx context.Context, hotelID uint) ([]models.HotelAmenity, error) {
	amenities := make([]models.HotelAmenity, 0)
	err := r.db.WithContext(ctx).Model(&models.Hotel{ID: hotelID}).Order("hotel_amenities.id").Association("HotelAmenities").Find(&amenities)
	return amenities, err
}

// AddHotelAmenityForHotel creates the amenity and links it to the hotel.
func (r *Repository) AddHotelAmenityForHotel(ctx context.Context, hotelID uint, amenity *models.HotelAmenity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireParent(tx, &models.Hotel{}, hotelID); err != nil {
			return err
		}
		if err := tx.Create(amenity).Error; err != nil {
			return err
		}
		return tx.Model(&models.Hotel{ID: hotelID}).Association("HotelAmenities").Append(amenity)
	})
}

func (r *Repository) RemoveHotelAmenityFromHotel(ctx context.Context, hotelID, amenityID uint) error {
	return checkAffected(r.db.WithContext(ctx).Exec(
		"DELETE FROM hotel_hotel_amenities WHERE hotel_id = ? AND hotel_amenity_id = ?", hotelID, amenityID))
}

func deleteHotelTx(tx *gorm.DB, hotelID uint) error {
	var roomIDs []uint
	if err := tx.Model(&models.Room{}).Where("hotel_id = ?", hotelID).Pluck("id", &roomIDs).Error; err != nil {
		return err
	}
	if err := deleteRoomsTx(tx, roomIDs); err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM hotel_hotel_amenities WHERE hotel_id = ?", hotelID).Error; err != nil {
		return err
	}
	if err := detachPhotos(tx, "hotel_id", hotelID); err != nil {
		return err
	}
	return checkAffected(tx.Delete(&models.Hotel{}, hotelID))
}

func deleteRoomsTx(tx *gorm.DB, roomIDs []uint) error {
	if len(roomIDs) == 0 {
		return nil
	}
	if err := tx.Where("room_id IN ?", roomIDs).Delete(&models.Booking{}).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM room_room_amenities WHERE room_id IN ?", roomIDs).Error; err != nil {
		return err
	}
	if err := detachPhotos(tx, "room_id", roomIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", roomIDs).Delete(&models.Room{}).Error
}
