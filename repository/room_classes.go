package repository

import (
	"context"

	"hotelinfo/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *Repository) ListRoomClasses(ctx context.Context, f ListFilter) ([]models.RoomClass, PaginationMetaData, error) {
	q := r.db.WithContext(ctx).Model(&models.RoomClass{})
	q = whereContains(q, "description", f.Name)
	return findPage[models.RoomClass](q, f.PageNumber, f.PageSize, "id")
}

func (r *Repository) GetRoomClass(ctx context.Context, id uint) (*models.RoomClass, error) {
	var roomClass models.RoomClass
	if err := r.first(ctx, &roomClass, id); err != nil {
		return nil, err
	}
	return &roomClass, nil
}

func (r *Repository) RoomClassExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.RoomClass{}, id)
}

func (r *Repository) CreateRoomClass(ctx context.Context, roomClass *models.RoomClass) error {
	return r.db.WithContext(ctx).Create(roomClass).Error
}

func (r *Repository) UpdateRoomClass(ctx context.Context, roomClass *models.RoomClass) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(roomClass).Error
}

// DeleteRoomClass unassigns its rooms and drops its amenity links before removing it.
func (r *Repository) DeleteRoomClass(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireParent(tx, &models.RoomClass{}, id); err != nil {
			return notFoundParent(err)
		}
		if err := tx.Model(&models.Room{}).Where("room_class_id = ?", id).Update("room_class_id", gorm.Expr("NULL")).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM room_class_room_amenities WHERE room_class_id = ?", id).Error; err != nil {
			return err
		}
		if err := detachPhotos(tx, "room_class_id", id); err != nil {
			return err
		}
		return checkAffected(tx.Delete(&models.RoomClass{}, id))
	})
}

func (r *Repository) ListRoomsForRoomClass(ctx context.Context, roomClassID uint) ([]models.Room, error) {
	rooms := make([]models.Room, 0)
	err := r.db.WithContext(ctx).Preload("RoomClass").Where("room_class_id = ?", roomClassID).Order("id").Find(&rooms).Error
	return rooms, err
}

// AssignRoomToRoomClass moves the room into the class. A room without its own
// cost takes the class's standard cost.
func (r *Repository) AssignRoomToRoomClass(ctx context.Context, roomClassID, roomID uint) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roomClass models.RoomClass
		if err := tx.First(&roomClass, roomClassID).Error; err != nil {
			return notFound(err)
		}
		if err := tx.First(&room, roomID).Error; err != nil {
			return notFound(err)
		}
		room.RoomClassID = &roomClass.ID
		if room.Cost == nil {
			cost := roomClass.StandardCost
			room.Cost = &cost
		}
		if err := tx.Omit(clause.Associations).Save(&room).Error; err != nil {
			return err
		}
		room.RoomClass = &roomClass
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *Repository) UnassignRoomFromRoomClass(ctx context.Context, roomClassID, roomID uint) error {
	return checkAffected(r.db.WithContext(ctx).Model(&models.Room{}).
		Where("id = ? AND room_class_id = ?", roomID, roomClassID).
		Update("room_class_id", gorm.Expr("NULL")))
}

func (r *Repository) ListRoomAmenitiesForRoomClass(ctx context.Context, roomClassID uint) ([]models.RoomAmenity, error) {
	amenities := make([]models.RoomAmenity, 0)
	err := r.db.WithContext(ctx).Model(&models.RoomClass{ID: roomClassID}).Order("room_amenities.id").Association("RoomAmenities").Find(&amenities)
	return amenities, err
}

func (r *Repository) AddRoomAmenityForRoomClass(ctx context.Context, roomClassID uint, amenity *models.RoomAmenity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireParent(tx, &models.RoomClass{}, roomClassID); err != nil {
			return err
		}
		if err := tx.Create(amenity).Error; err != nil {
			return err
		}
		return tx.Model(&models.RoomClass{ID: roomClassID}).Association("RoomAmenities").Append(amenity)
	})
}

func (r *Repository) RemoveRoomAmenityFromRoomClass(ctx context.Context, roomClassID, amenityID uint) error {
	return checkAffected(r.db.WithContext(ctx).Exec(
		"DELETE FROM room_class_room_amenities WHERE room_class_id = ? AND room_amenity_id = ?", roomClassID, amenityID))
}
