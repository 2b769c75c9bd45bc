package repository

import (
	"context"

	"hotelinfo/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *Repository) ListRooms(ctx context.Context, f ListFilter) ([]models.Room, PaginationMetaData, error) {
	q := r.db.WithContext(ctx).Model(&models.Room{})
	q = whereContains(q, "room_number", f.Name)
	return findPage[models.Room](q, f.PageNumber, f.PageSize, "hotel_id, room_number, id", "RoomClass")
}

func (r *Repository) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.first(ctx, &room, id, "RoomClass"); err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *Repository) RoomExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.Room{}, id)
}

func (r *Repository) UpdateRoom(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(room).Error
}

func (r *Repository) DeleteRoom(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireParent(tx, &models.Room{}, id); err != nil {
			return notFoundParent(err)
		}
		return deleteRoomsTx(tx, []uint{id})
	})
}

func (r *Repository) ListRoomAmenitiesForRoom(ctx context.Context, roomID uint) ([]models.RoomAmenity, error) {
	amenities := make([]models.RoomAmenity, 0)
	err := r.db.WithContext(ctx).Model(&models.Room{ID: roomID}).Order("room_amenities.id").Association("RoomAmenities").Find(&amenities)
	return amenities, err
}

func (r *Repository) AddRoomAmenityForRoom(ctx context.Context, roomID uint, amenity *models.RoomAmenity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireParent(tx, &models.Room{}, roomID); err != nil {
			return err
		}
		if err := tx.Create(amenity).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{ID: roomID}).Association("RoomAmenities").Append(amenity)
	})
}

func (r *Repository) RemoveRoomAmenityFromRoom(ctx context.Context, roomID, amenityID uint) error {
	return checkAffected(r.db.WithContext(ctx).Exec(
		"DELETE FROM room_room_amenities WHERE room_id = ? AND room_amenity_id = ?", roomID, amenityID))
}
