package repository

import (
	"context"

	"hotelinfo/errors"
	"hotelinfo/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *Repository) ListCities(ctx context.Context, f ListFilter) ([]models.City, PaginationMetaData, error) {
	q := r.db.WithContext(ctx).Model(&models.City{})
	q = whereContains(q, "name", f.Name)
	q = whereSearch(q, f.SearchQuery, "name", "description")
	return findPage[models.City](q, f.PageNumber, f.PageSize, "name, id")
}

func (r *Repository) GetCity(ctx context.Context, id uint, includeHotels bool) (*models.City, error) {
	var city models.City
	q := r.db.WithContext(ctx)
	if includeHotels {
		q = q.Preload("Hotels", func(db *gorm.DB) *gorm.DB { return db.Order("id") })
	}
	if err := q.First(&city, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &city, nil
}

func (r *Repository) CityExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.City{}, id)
}

// CreateCity inserts the city together with any nested hotels and rooms.
func (r *Repository) CreateCity(ctx context.Context, city *models.City) error {
	return r.db.WithContext(ctx).Create(city).Error
}

func (r *Repository) UpdateCity(ctx context.Context, city *models.City) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(city).Error
}

// DeleteCity removes the city and, with it, every hotel it owns.
func (r *Repository) DeleteCity(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var hotelIDs []uint
		if err := tx.Model(&models.Hotel{}).Where("city_id = ?", id).Pluck("id", &hotelIDs).Error; err != nil {
			return err
		}
		for _, hotelID := range hotelIDs {
			if err := deleteHotelTx(tx, hotelID); err != nil {
				return err
			}
		}
		if err := detachPhotos(tx, "city_id", id); err != nil {
			return err
		}
		return checkAffected(tx.Delete(&models.City{}, id))
	})
}

func (r *Repository) ListHotelsForCity(ctx context.Context, cityID uint) ([]models.Hotel, error) {
	hotels := make([]models.Hotel, 0)
	err := r.db.WithContext(ctx).Where("city_id = ?", cityID).Order("id").Find(&hotels).Error
	return hotels, err
}

// AddHotelForCity creates hotel under the city. ErrParentNotFound when the city is absent.
func (r *Repository) AddHotelForCity(ctx context.Context, cityID uint, hotel *models.Hotel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireParent(tx, &models.City{}, cityID); err != nil {
			return err
		}
		hotel.CityID = cityID
		return tx.Create(hotel).Error
	})
}

func (r *Repository) DeleteHotelForCity(ctx context.Context, cityID, hotelID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Hotel{}).Where("id = ? AND city_id = ?", hotelID, cityID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errors.ErrNotFound
		}
		return deleteHotelTx(tx, hotelID)
	})
}

func detachPhotos(tx *gorm.DB, column string, id interface{}) error {
	return tx.Model(&models.Photo{}).Where(column+" IN ?", ids(id)).Update(column, gorm.Expr("NULL")).Error
}

func ids(id interface{}) []uint {
	switch v := id.(type) {
	case uint:
		return []uint{v}
	case []uint:
		return v
	}
	return nil
}
