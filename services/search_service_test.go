package services

import (
	"context"
	"sync/atomic"
	"testing"

	"hotelinfo/constants"
	"hotelinfo/models"
	"hotelinfo/services/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearchStore struct {
	hotels         []models.Hotel
	amenities      []models.RoomAmenity
	amenityQueries atomic.Int32
}

func (f *fakeSearchStore) SearchCandidates(context.Context) ([]models.Hotel, error) {
	return f.hotels, nil
}

func (f *fakeSearchStore) ListDistinctRoomAmenities(context.Context) ([]models.RoomAmenity, error) {
	f.amenityQueries.Add(1)
	return f.amenities, nil
}

func price(v float64) *float64 { return &v }

func sampleSearchStore() *fakeSearchStore {
	ramallah := &models.City{ID: 1, Name: "Ramallah"}
	paris := &models.City{ID: 2, Name: "Paris"}
	return &fakeSearchStore{
		hotels: []models.Hotel{
			{
				ID: 1, Name: "Grand Park", HotelType: constants.HotelTypeLuxury, StarRating: 5, City: ramallah,
				HotelAmenities: []models.HotelAmenity{{Name: "Pool"}},
				Rooms: []models.Room{
					{Cost: price(250), RoomAmenities: []models.RoomAmenity{{Name: "Mini Bar"}}},
					{Cost: price(180)},
				},
				Photos: []models.Photo{{URL: "https://img.example.com/grand.jpg"}},
			},
			{ID: 2, Name: "Backpackers Nest", HotelType: constants.HotelTypeBudget, StarRating: 2, City: ramallah},
			{ID: 3, Name: "Le Marais", HotelType: constants.HotelTypeBoutique, StarRating: 4, City: paris},
		},
		amenities: []models.RoomAmenity{{Name: "Mini Bar"}, {Name: "Free Wi-Fi"}},
	}
}

func TestSearch_RanksByScore(t *testing.T) {
	svc := NewSearchService(sampleSearchStore(), nil, logger.Nop())

	results, meta, err := svc.Search(context.Background(), "luxury 5 star hotel in Ramallah with pool", 1, 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	best := results[0]
	assert.Equal(t, uint(1), best.HotelID)
	assert.Equal(t, "Luxury", best.HotelType)
	assert.Equal(t, "Ramallah", best.CityName)
	assert.Equal(t, 180.0, best.RoomPrice)
	assert.Equal(t, "https://img.example.com/grand.jpg", best.ThumbnailURL)
	assert.Equal(t, []string{"Pool", "Mini Bar"}, best.Amenities)
	assert.Equal(t, scoreType+scoreRating+scoreCity+scoreAmenity, best.Score)
	assert.Equal(t, int64(len(results)), meta.TotalItemCount)

	for _, r := range results {
		assert.NotEqual(t, uint(3), r.HotelID, "Paris hotel should not match")
	}
}

func TestSearch_EmptyQueryListsAllByName(t *testing.T) {
	svc := NewSearchService(sampleSearchStore(), nil, logger.Nop())

	results, meta, err := svc.Search(context.Background(), "  ", 1, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Backpackers Nest", results[0].HotelName)
	assert.Equal(t, "Grand Park", results[1].HotelName)
	assert.Equal(t, 2, meta.TotalPageCount)

	results, _, err = svc.Search(context.Background(), "", 5, 2)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_Unicode(t *testing.T) {
	svc := NewSearchService(sampleSearchStore(), nil, logger.Nop())

	results, _, err := svc.Search(context.Background(), "Le Maraïs", 1, 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, uint(3), results[0].HotelID)
}

func TestExtractRatingFromQuery(t *testing.T) {
	assert.Equal(t, 4, extractRatingFromQuery("a 4 star hotel"))
	assert.Equal(t, 3, extractRatingFromQuery("3-stars please"))
	assert.Equal(t, 5, extractRatingFromQuery("5*"))
	assert.Equal(t, -1, extractRatingFromQuery("7 stars"))
	assert.Equal(t, -1, extractRatingFromQuery("cheap hotel"))
}

func TestParseHotelType(t *testing.T) {
	assert.Equal(t, constants.HotelTypeBudget, parseHotelType("cheap place near the beach"))
	assert.Equal(t, constants.HotelTypeLuxury, parseHotelType("luxurious resort"))
	assert.Equal(t, constants.HotelTypeBoutique, parseHotelType("a boutique stay"))
	assert.Equal(t, constants.HotelTypeLuxury, parseHotelType("luxary stay"))
	assert.Equal(t, -1, parseHotelType("hotel in paris"))
	assert.Equal(t, -1, parseHotelType(""))
}

func TestAmenities_Cached(t *testing.T) {
	store := sampleSearchStore()
	svc := NewSearchService(store, NewRedisCache(newTestRedis(t)), logger.Nop())
	ctx := context.Background()

	first, err := svc.Amenities(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "Mini Bar", first[0].Name)

	second, err := svc.Amenities(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), store.amenityQueries.Load())
}
