package repository

import (
	"context"
	"strings"
	"time"

	"hotelinfo/errors"
	"hotelinfo/models"

	"gorm.io/gorm"
)

// HotelInfoRepository is the data access surface used by controllers, services and jobs.
type HotelInfoRepository interface {
	// Cities
	ListCities(ctx context.Context, f ListFilter) ([]models.City, PaginationMetaData, error)
	GetCity(ctx context.Context, id uint, includeHotels bool) (*models.City, error)
	CityExists(ctx context.Context, id uint) (bool, error)
	CreateCity(ctx context.Context, city *models.City) error
	UpdateCity(ctx context.Context, city *models.City) error
	DeleteCity(ctx context.Context, id uint) error
	ListHotelsForCity(ctx context.Context, cityID uint) ([]models.Hotel, error)
	AddHotelForCity(ctx context.Context, cityID uint, hotel *models.Hotel) error
	DeleteHotelForCity(ctx context.Context, cityID, hotelID uint) error

	// Hotels
	ListHotels(ctx context.Context, f ListFilter) ([]models.Hotel, PaginationMetaData, error)
	GetHotel(ctx context.Context, id uint, includeRooms bool) (*models.Hotel, error)
	HotelExists(ctx context.Context, id uint) (bool, error)
	UpdateHotel(ctx context.Context, hotel *models.Hotel) error
	DeleteHotel(ctx context.Context, id uint) error
	ListRoomsForHotel(ctx context.Context, hotelID uint) ([]models.Room, error)
	AddRoomForHotel(ctx context.Context, hotelID uint, room *models.Room) error
	DeleteRoomForHotel(ctx context.Context, hotelID, roomID uint) error
	ListHotelAmenitiesForHotel(ctx context.Context, hotelID uint) ([]models.HotelAmenity, error)
	AddHotelAmenityForHotel(ctx context.Context, hotelID uint, amenity *models.HotelAmenity) error
	RemoveHotelAmenityFromHotel(ctx context.Context, hotelID, amenityID uint) error

	// Rooms
	ListRooms(ctx context.Context, f ListFilter) ([]models.Room, PaginationMetaData, error)
	GetRoom(ctx context.Context, id uint) (*models.Room, error)
	RoomExists(ctx context.Context, id uint) (bool, error)
	UpdateRoom(ctx context.Context, room *models.Room) error
	DeleteRoom(ctx context.Context, id uint) error
	ListRoomAmenitiesForRoom(ctx context.Context, roomID uint) ([]models.RoomAmenity, error)
	AddRoomAmenityForRoom(ctx context.Context, roomID uint, amenity *models.RoomAmenity) error
	RemoveRoomAmenityFromRoom(ctx context.Context, roomID, amenityID uint) error

	// Room classes
	ListRoomClasses(ctx context.Context, f ListFilter) ([]models.RoomClass, PaginationMetaData, error)
	GetRoomClass(ctx context.Context, id uint) (*models.RoomClass, error)
	RoomClassExists(ctx context.Context, id uint) (bool, error)
	CreateRoomClass(ctx context.Context, roomClass *models.RoomClass) error
	UpdateRoomClass(ctx context.Context, roomClass *models.RoomClass) error
	DeleteRoomClass(ctx context.Context, id uint) error
	ListRoomsForRoomClass(ctx context.Context, roomClassID uint) ([]models.Room, error)
	AssignRoomToRoomClass(ctx context.Context, roomClassID, roomID uint) (*models.Room, error)
	UnassignRoomFromRoomClass(ctx context.Context, roomClassID, roomID uint) error
	ListRoomAmenitiesForRoomClass(ctx context.Context, roomClassID uint) ([]models.RoomAmenity, error)
	AddRoomAmenityForRoomClass(ctx context.Context, roomClassID uint, amenity *models.RoomAmenity) error
	RemoveRoomAmenityFromRoomClass(ctx context.Context, roomClassID, amenityID uint) error

	// Amenities
	ListHotelAmenities(ctx context.Context, f ListFilter) ([]models.HotelAmenity, PaginationMetaData, error)
	GetHotelAmenity(ctx context.Context, id uint) (*models.HotelAmenity, error)
	CreateHotelAmenity(ctx context.Context, amenity *models.HotelAmenity) error
	UpdateHotelAmenity(ctx context.Context, amenity *models.HotelAmenity) error
	DeleteHotelAmenity(ctx context.Context, id uint) error
	ListRoomAmenities(ctx context.Context, f ListFilter) ([]models.RoomAmenity, PaginationMetaData, error)
	GetRoomAmenity(ctx context.Context, id uint) (*models.RoomAmenity, error)
	CreateRoomAmenity(ctx context.Context, amenity *models.RoomAmenity) error
	UpdateRoomAmenity(ctx context.Context, amenity *models.RoomAmenity) error
	DeleteRoomAmenity(ctx context.Context, id uint) error
	ListDistinctRoomAmenities(ctx context.Context) ([]models.RoomAmenity, error)

	// Photos
	ListPhotos(ctx context.Context, owner PhotoOwner) ([]models.Photo, error)
	AddPhoto(ctx context.Context, owner PhotoOwner, photo *models.Photo) error
	RemovePhoto(ctx context.Context, owner PhotoOwner, photoID uint) error
	GetPhoto(ctx context.Context, id uint) (*models.Photo, error)
	CreatePhotos(ctx context.Context, photos []*models.Photo) error
	UpdatePhoto(ctx context.Context, photo *models.Photo) error
	DeletePhoto(ctx context.Context, id uint) error

	// Bookings
	ListBookings(ctx context.Context, f BookingFilter) ([]models.Booking, PaginationMetaData, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	CreateBooking(ctx context.Context, booking *models.Booking) error
	NextConfirmationSequence(ctx context.Context, prefix string) (int, error)
	HasOverlappingBooking(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error)
	CompleteBookingsBefore(ctx context.Context, t time.Time) (int64, error)

	// Users
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpsertUser(ctx context.Context, user *models.User) error

	// Search
	SearchCandidates(ctx context.Context) ([]models.Hotel, error)
}

// Repository is the gorm implementation of HotelInfoRepository.
type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates every table the service owns.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(models.AllModels()...)
}

func (r *Repository) exists(ctx context.Context, model interface{}, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) first(ctx context.Context, dst interface{}, id uint, preloads ...string) error {
	q := r.db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	return notFound(q.First(dst, id).Error)
}

// notFound maps gorm's missing-record error to errors.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.ErrNotFound
	}
	return err
}

func requireParent(tx *gorm.DB, model interface{}, id uint) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errors.ErrParentNotFound
	}
	return nil
}

func checkAffected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.ErrNotFound
	}
	return nil
}

// notFoundParent turns ErrParentNotFound into ErrNotFound for operations on
// the resource itself.
func notFoundParent(err error) error {
	if errors.Is(err, errors.ErrParentNotFound) {
		return errors.ErrNotFound
	}
	return err
}

// isDuplicateKey reports a unique constraint violation. Dialects that do not
// translate errors are matched on their message.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
