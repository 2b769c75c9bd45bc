package repository

import (
	"context"
	"fmt"

	"hotelinfo/models"

	"gorm.io/gorm"
)

type OwnerKind string

const (
	OwnerCity      OwnerKind = "city"
	OwnerHotel     OwnerKind = "hotel"
	OwnerRoom      OwnerKind = "room"
	OwnerRoomClass OwnerKind = "roomClass"
)

// PhotoOwner names the single parent a photo is attached to.
type PhotoOwner struct {
	Kind OwnerKind
	ID   uint
}

func (o PhotoOwner) column() string {
	switch o.Kind {
	case OwnerCity:
		return "city_id"
	case OwnerHotel:
		return "hotel_id"
	case OwnerRoom:
		return "room_id"
	case OwnerRoomClass:
		return "room_class_id"
	}
	return ""
}

func (o PhotoOwner) model() interface{} {
	switch o.Kind {
	case OwnerCity:
		return &models.City{}
	case OwnerHotel:
		return &models.Hotel{}
	case OwnerRoom:
		return &models.Room{}
	case OwnerRoomClass:
		return &models.RoomClass{}
	}
	return nil
}

// attach points photo at the owner and clears every other owner key.
func (o PhotoOwner) attach(photo *models.Photo) {
	id := o.ID
	photo.CityID, photo.HotelID, photo.RoomID, photo.RoomClassID = nil, nil, nil, nil
	switch o.Kind {
	case OwnerCity:
		photo.CityID = &id
	case OwnerHotel:
		photo.HotelID = &id
	case OwnerRoom:
		photo.RoomID = &id
	case OwnerRoomClass:
		photo.RoomClassID = &id
	}
}

func (r *Repository) ListPhotos(ctx context.Context, owner PhotoOwner) ([]models.Photo, error) {
	column := owner.column()
	if column == "" {
		return nil, fmt.Errorf("unknown photo owner %q", owner.Kind)
	}
	photos := make([]models.Photo, 0)
	err := r.db.WithContext(ctx).Where(column+" = ?", owner.ID).Order("id").Find(&photos).Error
	return photos, err
}

// AddPhoto stores photo under owner. ErrParentNotFound when the owner is absent.
func (r *Repository) AddPhoto(ctx context.Context, owner PhotoOwner, photo *models.Photo) error {
	model := owner.model()
	if model == nil {
		return fmt.Errorf("unknown photo owner %q", owner.Kind)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireParent(tx, model, owner.ID); err != nil {
			return err
		}
		owner.attach(photo)
		return tx.Create(photo).Error
	})
}

func (r *Repository) RemovePhoto(ctx context.Context, owner PhotoOwner, photoID uint) error {
	column := owner.column()
	if column == "" {
		return fmt.Errorf("unknown photo owner %q", owner.Kind)
	}
	return checkAffected(r.db.WithContext(ctx).Where("id = ? AND "+column+" = ?", photoID, owner.ID).Delete(&models.Photo{}))
}

func (r *Repository) GetPhoto(ctx context.Context, id uint) (*models.Photo, error) {
	var photo models.Photo
	if err := r.first(ctx, &photo, id); err != nil {
		return nil, err
	}
	return &photo, nil
}

// CreatePhotos inserts all photos or none of them.
func (r *Repository) CreatePhotos(ctx context.Context, photos []*models.Photo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, photo := range photos {
			if err := tx.Create(photo).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) UpdatePhoto(ctx context.Context, photo *models.Photo) error {
	return r.db.WithContext(ctx).Save(photo).Error
}

func (r *Repository) DeletePhoto(ctx context.Context, id uint) error {
	return checkAffected(r.db.WithContext(ctx).Delete(&models.Photo{}, id))
}
