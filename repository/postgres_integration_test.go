//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hotelinfo/config"
	"hotelinfo/constants"
	"hotelinfo/errors"
	"hotelinfo/models"
	"hotelinfo/repository"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "dockertest")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=hotelinfo",
			"POSTGRES_PASSWORD=hotelinfo",
			"POSTGRES_DB=hotelinfo",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "run postgres")
	t.Cleanup(func() { _ = pool.Purge(resource) })

	var port int
	_, err = fmt.Sscanf(resource.GetPort("5432/tcp"), "%d", &port)
	require.NoError(t, err)
	cfg := config.DatabaseConfig{
		Host: "127.0.0.1", Port: port, User: "hotelinfo", Password: "hotelinfo", Name: "hotelinfo",
		SSLMode: "disable", TimeZone: "UTC", MaxOpenConns: 5, MaxIdleConns: 1, ConnMaxLifetime: 60,
	}

	pool.MaxWait = 2 * time.Minute
	var db *gorm.DB
	require.NoError(t, pool.Retry(func() error {
		var e error
		db, e = config.ConnectDB(cfg, false)
		if e != nil {
			return e
		}
		sqlDB, e := db.DB()
		if e != nil {
			return e
		}
		return sqlDB.Ping()
	}), "connect postgres")
	return db
}

func TestRepository_Postgres(t *testing.T) {
	db := startPostgres(t)
	repo := repository.New(db)
	ctx := context.Background()
	require.NoError(t, repo.Migrate(ctx))

	city := &models.City{Name: "Ramallah", Description: "Central West Bank"}
	require.NoError(t, repo.CreateCity(ctx, city))
	hotel := &models.Hotel{Name: "Grand Park", Rooms: []models.Room{{RoomNumber: "1"}}}
	require.NoError(t, repo.AddHotelForCity(ctx, city.ID, hotel))
	assert.ErrorIs(t, repo.AddHotelForCity(ctx, city.ID+100, &models.Hotel{Name: "Orphan"}), errors.ErrParentNotFound)

	require.NoError(t, repo.AddHotelAmenityForHotel(ctx, hotel.ID, &models.HotelAmenity{Name: "Pool"}))
	amenities, err := repo.ListHotelAmenitiesForHotel(ctx, hotel.ID)
	require.NoError(t, err)
	assert.Len(t, amenities, 1)

	cities, meta, err := repo.ListCities(ctx, repository.ListFilter{SearchQuery: "WEST BANK", PageSize: 50})
	require.NoError(t, err)
	assert.Len(t, cities, 1)
	assert.Equal(t, constants.MaxPageSize, meta.PageSize)

	roomClass := &models.RoomClass{StandardCost: 75, Description: "Standard"}
	require.NoError(t, repo.CreateRoomClass(ctx, roomClass))
	room, err := repo.AssignRoomToRoomClass(ctx, roomClass.ID, hotel.Rooms[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 75.0, *room.Cost)

	past := time.Now().Add(-48 * time.Hour).UTC()
	require.NoError(t, repo.CreateBooking(ctx, &models.Booking{
		ConfirmationNumber: "20240101-0001", RoomID: room.ID, CustomerName: "Dana",
		CheckIn: past.Add(-24 * time.Hour), CheckOut: past, Status: constants.BookingStatusConfirmed,
	}))
	next, err := repo.NextConfirmationSequence(ctx, "20240101-")
	require.NoError(t, err)
	assert.Equal(t, 2, next)
	assert.ErrorIs(t, repo.CreateBooking(ctx, &models.Booking{
		ConfirmationNumber: "20240101-0001", RoomID: room.ID, CustomerName: "Lee",
		CheckIn: past.Add(24 * time.Hour), CheckOut: past.Add(48 * time.Hour),
	}), errors.ErrDuplicate)

	n, err := repo.CompleteBookingsBefore(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.UpsertUser(ctx, &models.User{Username: "admin", PasswordHash: "a", Role: constants.RoleUser}))
	require.NoError(t, repo.UpsertUser(ctx, &models.User{Username: "admin", PasswordHash: "b", Role: constants.RoleAdmin}))
	user, err := repo.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, user.Role)

	require.NoError(t, repo.DeleteCity(ctx, city.ID))
	_, err = repo.GetRoom(ctx, room.ID)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}
