package routes_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"hotelinfo/constants"
	"hotelinfo/dto"
	"hotelinfo/errors"
	"hotelinfo/models"
	"hotelinfo/repository"
	"hotelinfo/response"
	"hotelinfo/routes"
	"hotelinfo/services"
	"hotelinfo/services/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type fakeBlobStore struct {
	mu      sync.Mutex
	err     error
	failOn  int // when set, only that upload (1-based) returns err
	uploads int
	folders []string
	deleted []string
}

func (f *fakeBlobStore) Upload(_ context.Context, folder, name string, content io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads++
	if f.err != nil && (f.failOn == 0 || f.failOn == f.uploads) {
		return "", f.err
	}
	if _, err := io.ReadAll(content); err != nil {
		return "", err
	}
	f.folders = append(f.folders, folder)
	return fmt.Sprintf("https://res.cloudinary.test/%s/%s", folder, name), nil
}

func (f *fakeBlobStore) Delete(_ context.Context, folder, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, folder+"/"+name)
	return nil
}

type testServer struct {
	router     *gin.Engine
	db         *gorm.DB
	repo       *repository.Repository
	blobs      *fakeBlobStore
	tokens     *services.TokenService
	adminToken string
	userToken  string
	userID     uint
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo := repository.New(db)
	require.NoError(t, repo.Migrate(ctx))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	cache := services.NewRedisCache(rdb)

	log := logger.Nop()
	tokens := services.NewTokenService(strings.Repeat("s", 32), "hotelinfo", "hotelinfo-clients", time.Hour)
	auth := services.NewAuthService(services.AuthServiceOptions{Users: repo, Tokens: tokens, Logger: log})
	require.NoError(t, auth.SeedUsers(ctx, []services.SeedUser{
		{Username: "admin", Password: "admin-pass", Role: constants.RoleAdmin},
		{Username: "guest", Password: "guest-pass", Role: constants.RoleUser},
	}))

	blobs := &fakeBlobStore{}
	booking := services.NewBookingFacade(services.BookingFacadeOptions{
		Store:  repo,
		Logger: log,
		Now:    func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) },
	})

	router := gin.New()
	routes.SetupRoutes(router, routes.Dependencies{
		Repo:    repo,
		Cache:   cache,
		Blobs:   blobs,
		Tokens:  tokens,
		Auth:    auth,
		Booking: booking,
		Search:  services.NewSearchService(repo, cache, log),
		Logger:  log,
	})

	admin, err := repo.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	guest, err := repo.GetUserByUsername(ctx, "guest")
	require.NoError(t, err)

	srv := &testServer{router: router, db: db, repo: repo, blobs: blobs, tokens: tokens, userID: guest.ID}
	srv.adminToken = srv.token(t, admin.ID, "admin", constants.RoleAdmin)
	srv.userToken = srv.token(t, guest.ID, "guest", constants.RoleUser)
	return srv
}

func (s *testServer) token(t *testing.T, id uint, username, role string) string {
	t.Helper()
	token, err := s.tokens.GenerateToken(services.UserInfo{UserId: id, Username: username, Role: role})
	require.NoError(t, err)
	return token
}

func (s *testServer) do(method, path, token, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) doJSON(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	return s.do(method, path, token, "application/json", reader)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func paginationHeader(t *testing.T, w *httptest.ResponseRecorder) repository.PaginationMetaData {
	t.Helper()
	raw := w.Header().Get(response.PaginationHeader)
	require.NotEmpty(t, raw)
	var meta repository.PaginationMetaData
	require.NoError(t, json.Unmarshal([]byte(raw), &meta))
	return meta
}

func (s *testServer) seedHotel(t *testing.T, cost float64) (*models.City, *models.Hotel, *models.Room) {
	t.Helper()
	ctx := context.Background()
	city := &models.City{Name: "Ramallah", Description: "Central West Bank"}
	require.NoError(t, s.repo.CreateCity(ctx, city))
	hotel := &models.Hotel{Name: "Grand Park", HotelType: constants.HotelTypeLuxury, StarRating: 5}
	require.NoError(t, s.repo.AddHotelForCity(ctx, city.ID, hotel))
	room := &models.Room{RoomNumber: "101", Cost: &cost}
	require.NoError(t, s.repo.AddRoomForHotel(ctx, hotel.ID, room))
	return city, hotel, room
}

func TestCreateCityThenGet(t *testing.T) {
	srv := newTestServer(t)

	w := srv.doJSON(http.MethodPost, "/api/v1/cities", srv.adminToken, map[string]string{
		"name": "Ramallah", "description": "A vibrant city in the central West Bank.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.CityDto](t, w)
	assert.NotZero(t, created.ID)
	assert.Equal(t, fmt.Sprintf("/api/v1/cities/%d", created.ID), w.Header().Get("Location"))

	w = srv.do(http.MethodGet, fmt.Sprintf("/api/v1/cities/%d?includeHotels=false", created.ID), "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]interface{}](t, w)
	assert.Equal(t, "Ramallah", body["name"])
	assert.NotContains(t, body, "hotels")
}

func TestCreateCityWithNestedHotels(t *testing.T) {
	srv := newTestServer(t)

	w := srv.doJSON(http.MethodPost, "/api/v1/cities", srv.adminToken, map[string]interface{}{
		"name": "Paris", "description": "The city of light.",
		"hotels": []map[string]interface{}{
			{"name": "Le Marais", "starRating": 4, "rooms": []map[string]interface{}{{"roomNumber": "12", "cost": 210}}},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.CityDto](t, w)

	w = srv.do(http.MethodGet, fmt.Sprintf("/api/v1/cities/%d?includeHotels=true", created.ID), "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	city := decode[dto.CityDto](t, w)
	require.Len(t, city.Hotels, 1)
	assert.Equal(t, "Le Marais", city.Hotels[0].Name)
}

func TestCreateCity_Validation(t *testing.T) {
	srv := newTestServer(t)

	w := srv.doJSON(http.MethodPost, "/api/v1/cities", srv.adminToken, map[string]string{"description": "no name"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[response.Response](t, w)
	require.NotEmpty(t, body.Errors)
	assert.Equal(t, "name", body.Errors[0].Field)

	w = srv.do(http.MethodPost, "/api/v1/cities", srv.adminToken, "application/json", strings.NewReader("{"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMutationsRequireAdmin(t *testing.T) {
	srv := newTestServer(t)
	city := map[string]string{"name": "Denver", "description": "Mile High"}

	w := srv.doJSON(http.MethodPost, "/api/v1/cities", "", city)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = srv.doJSON(http.MethodPost, "/api/v1/cities", "not-a-token", city)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = srv.doJSON(http.MethodPost, "/api/v1/cities", srv.userToken, city)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = srv.do(http.MethodGet, "/api/v1/cities", "", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListCities_PageSizeClampedAndCached(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	for i := 0; i < 25; i++ {
		require.NoError(t, srv.repo.CreateCity(ctx, &models.City{Name: fmt.Sprintf("City %02d", i), Description: "d"}))
	}

	w := srv.do(http.MethodGet, "/api/v1/cities?pageSize=50", "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.CityWithoutHotels](t, w), 20)
	meta := paginationHeader(t, w)
	assert.Equal(t, repository.PaginationMetaData{CurrentPage: 1, TotalPageCount: 2, TotalItemCount: 25, PageSize: 20}, meta)

	// served from cache; the direct insert is not visible yet
	require.NoError(t, srv.repo.CreateCity(ctx, &models.City{Name: "Hidden", Description: "d"}))
	w = srv.do(http.MethodGet, "/api/v1/cities?pageSize=50", "", "", nil)
	assert.Equal(t, int64(25), paginationHeader(t, w).TotalItemCount)

	// an API write drops the cached pages
	w = srv.doJSON(http.MethodPost, "/api/v1/cities", srv.adminToken, map[string]string{"name": "Tokyo", "description": "d"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = srv.do(http.MethodGet, "/api/v1/cities?pageSize=50", "", "", nil)
	assert.Equal(t, int64(27), paginationHeader(t, w).TotalItemCount)

	w = srv.do(http.MethodGet, "/api/v1/cities", "", "", nil)
	assert.Equal(t, constants.DefaultPageSize, paginationHeader(t, w).PageSize)
}

func TestGetCity_NotFoundAndBadID(t *testing.T) {
	srv := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, srv.do(http.MethodGet, "/api/v1/cities/999", "", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, srv.do(http.MethodGet, "/api/v1/cities/abc", "", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, srv.do(http.MethodGet, "/api/v1/cities/1?includeHotels=maybe", "", "", nil).Code)
}

func TestNestedResourcesUnderMissingParent(t *testing.T) {
	srv := newTestServer(t)

	gets := []string{
		"/api/v1/cities/999/hotels",
		"/api/v1/cities/999/photos",
		"/api/v1/hotels/999/rooms",
		"/api/v1/hotels/999/amenities",
		"/api/v1/rooms/999/amenities",
		"/api/v1/rooms/999/photos",
		"/api/v1/room-classes/999/rooms",
		"/api/v1/room-classes/999/amenities",
	}
	for _, path := range gets {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, http.StatusNotFound, srv.do(http.MethodGet, path, "", "", nil).Code)
		})
	}

	w := srv.doJSON(http.MethodPost, "/api/v1/cities/999/hotels", srv.adminToken, map[string]string{"name": "Orphan"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = srv.doJSON(http.MethodPost, "/api/v1/hotels/999/rooms", srv.adminToken, map[string]string{"roomNumber": "1"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = srv.doJSON(http.MethodPost, "/api/v1/hotels/999/photos", srv.adminToken, map[string]string{"url": "https://img.example.com/a.jpg"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatchCity(t *testing.T) {
	srv := newTestServer(t)
	city := &models.City{Name: "Denver", Description: "Mile High"}
	require.NoError(t, srv.repo.CreateCity(context.Background(), city))
	path := fmt.Sprintf("/api/v1/cities/%d", city.ID)

	w := srv.do(http.MethodPatch, path, srv.adminToken, "application/json-patch+json",
		strings.NewReader(`[{"op":"replace","path":"/name","value":"Boulder"}]`))
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	invalid := []string{
		`[{"op":"replace","path":"/name","value":""}]`,
		`[{"op":"add","path":"/country","value":"US"}]`,
		`[{"op":"replace","path":"/missing/field","value":1}]`,
		`not a patch`,
	}
	for _, doc := range invalid {
		w = srv.do(http.MethodPatch, path, srv.adminToken, "application/json-patch+json", strings.NewReader(doc))
		assert.Equal(t, http.StatusBadRequest, w.Code, doc)
	}

	w = srv.do(http.MethodGet, path, "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[dto.CityWithoutHotels](t, w)
	assert.Equal(t, "Boulder", got.Name)
	assert.Equal(t, "Mile High", got.Description)

	w = srv.do(http.MethodPatch, path, srv.adminToken, "application/merge-patch+json",
		strings.NewReader(`{"description":"Foothills"}`))
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	got = decode[dto.CityWithoutHotels](t, srv.do(http.MethodGet, path, "", "", nil))
	assert.Equal(t, "Foothills", got.Description)

	w = srv.do(http.MethodPatch, "/api/v1/cities/999", srv.adminToken, "application/json-patch+json",
		strings.NewReader(`[{"op":"replace","path":"/name","value":"x"}]`))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCity(t *testing.T) {
	srv := newTestServer(t)
	city := &models.City{Name: "Tokyo", Description: "Neon"}
	require.NoError(t, srv.repo.CreateCity(context.Background(), city))
	path := fmt.Sprintf("/api/v1/cities/%d", city.ID)

	w := srv.doJSON(http.MethodPut, path, srv.adminToken, map[string]string{"name": "Kyoto", "description": "Temples"})
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	got := decode[dto.CityWithoutHotels](t, srv.do(http.MethodGet, path, "", "", nil))
	assert.Equal(t, "Kyoto", got.Name)

	w = srv.doJSON(http.MethodPut, "/api/v1/cities/999", srv.adminToken, map[string]string{"name": "X", "description": "Y"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCity(t *testing.T) {
	srv := newTestServer(t)
	city, hotel, _ := srv.seedHotel(t, 100)
	path := fmt.Sprintf("/api/v1/cities/%d", city.ID)

	assert.Equal(t, http.StatusNoContent, srv.do(http.MethodDelete, path, srv.adminToken, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, srv.do(http.MethodGet, path, "", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, srv.do(http.MethodGet, fmt.Sprintf("/api/v1/hotels/%d", hotel.ID), "", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, srv.do(http.MethodDelete, path, srv.adminToken, "", nil).Code)
}

func TestHotelRoomsAndAmenities(t *testing.T) {
	srv := newTestServer(t)
	_, hotel, room := srv.seedHotel(t, 80)
	base := fmt.Sprintf("/api/v1/hotels/%d", hotel.ID)

	w := srv.do(http.MethodGet, base+"?includeRooms=true", "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[dto.HotelDto](t, w)
	require.Len(t, got.Rooms, 1)
	assert.Equal(t, room.ID, got.Rooms[0].ID)

	w = srv.doJSON(http.MethodPost, base+"/rooms", srv.adminToken, map[string]interface{}{"roomNumber": "102", "cost": 95.5})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	newRoom := decode[dto.RoomDto](t, w)
	assert.Equal(t, hotel.ID, newRoom.HotelID)

	w = srv.do(http.MethodGet, base+"/rooms", "", "", nil)
	assert.Len(t, decode[[]dto.RoomDto](t, w), 2)

	w = srv.doJSON(http.MethodPost, base+"/amenities", srv.adminToken, map[string]string{"name": "Pool", "description": "Outdoor"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	amenity := decode[dto.AmenityDto](t, w)

	w = srv.do(http.MethodGet, base+"/amenities", "", "", nil)
	assert.Len(t, decode[[]dto.AmenityDto](t, w), 1)

	amenityPath := fmt.Sprintf("%s/amenities/%d", base, amenity.ID)
	assert.Equal(t, http.StatusNoContent, srv.do(http.MethodDelete, amenityPath, srv.adminToken, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, srv.do(http.MethodDelete, amenityPath, srv.adminToken, "", nil).Code)

	roomPath := fmt.Sprintf("%s/rooms/%d", base, newRoom.ID)
	assert.Equal(t, http.StatusNoContent, srv.do(http.MethodDelete, roomPath, srv.adminToken, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, srv.do(http.MethodGet, fmt.Sprintf("/api/v1/rooms/%d", newRoom.ID), "", "", nil).Code)
}

func TestUpdateHotel_HotelType(t *testing.T) {
	srv := newTestServer(t)
	_, hotel, _ := srv.seedHotel(t, 80)
	path := fmt.Sprintf("/api/v1/hotels/%d", hotel.ID)

	w := srv.doJSON(http.MethodPut, path, srv.adminToken, map[string]interface{}{"name": "Grand Park", "hotelType": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "hotelType")

	w = srv.doJSON(http.MethodPut, path, srv.adminToken, map[string]interface{}{"name": "Grand Park", "hotelType": constants.HotelTypeBudget})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	got := decode[dto.HotelWithoutRooms](t, srv.do(http.MethodGet, path, "", "", nil))
	assert.Equal(t, constants.HotelTypeBudget, got.HotelType)
}

func TestAssignRoomToRoomClass(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	_, hotel, _ := srv.seedHotel(t, 80)
	room := &models.Room{RoomNumber: "201"}
	require.NoError(t, srv.repo.AddRoomForHotel(ctx, hotel.ID, room))

	w := srv.doJSON(http.MethodPost, "/api/v1/room-classes", srv.adminToken, map[string]interface{}{"standardCost": 150, "description": "Suite"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	roomClass := decode[dto.RoomClassDto](t, w)
	base := fmt.Sprintf("/api/v1/room-classes/%d/rooms", roomClass.ID)

	w = srv.do(http.MethodPost, fmt.Sprintf("%s?roomId=%d", base, room.ID), srv.adminToken, "", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assigned := decode[dto.RoomDto](t, w)
	require.NotNil(t, assigned.Cost)
	assert.Equal(t, 150.0, *assigned.Cost)
	assert.Equal(t, roomClass.ID, *assigned.RoomClassID)

	assert.Equal(t, http.StatusBadRequest, srv.do(http.MethodPost, base+"?roomId=abc", srv.adminToken, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, srv.do(http.MethodPost, base+"?roomId=999", srv.adminToken, "", nil).Code)

	w = srv.do(http.MethodGet, base, "", "", nil)
	assert.Len(t, decode[[]dto.RoomDto](t, w), 1)
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t)

	w := srv.doJSON(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "admin", "password": "admin-pass"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	login := decode[dto.LoginResponse](t, w)
	assert.Equal(t, constants.RoleAdmin, login.UserType)
	assert.Equal(t, "Bearer "+login.AccessToken, login.Authorization)

	w = srv.doJSON(http.MethodPost, "/api/v1/cities", login.AccessToken, map[string]string{"name": "Cape Town", "description": "d"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = srv.doJSON(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = srv.doJSON(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "nobody", "password": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = srv.doJSON(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for name, content := range files {
		part, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.WriteField("note", "ignored"))
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestUploadPhotos(t *testing.T) {
	srv := newTestServer(t)

	body, contentType := multipartBody(t, nil)
	w := srv.do(http.MethodPost, "/api/v1/photos", srv.adminToken, contentType, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, contentType = multipartBody(t, map[string][]byte{"a.jpg": []byte("jpeg-a"), "b.jpg": []byte("jpeg-b")})
	w = srv.do(http.MethodPost, "/api/v1/photos", srv.adminToken, contentType, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	photos := decode[[]dto.PhotoDto](t, w)
	require.Len(t, photos, 2)
	assert.True(t, strings.HasPrefix(photos[0].URL, "https://res.cloudinary.test/admin/"))
	assert.Equal(t, []string{"admin", "admin"}, srv.blobs.folders)
	assert.Equal(t, fmt.Sprintf("/api/v1/photos/%d", photos[0].ID), w.Header().Get("Location"))

	w = srv.do(http.MethodGet, fmt.Sprintf("/api/v1/photos/%d", photos[1].ID), "", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body, contentType = multipartBody(t, map[string][]byte{"a.jpg": []byte("jpeg-a")})
	w = srv.do(http.MethodPost, "/api/v1/photos", srv.userToken, contentType, body)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUploadPhotos_FailureHidesCause(t *testing.T) {
	srv := newTestServer(t)
	srv.blobs.err = fmt.Errorf("cloudinary: api_secret mismatch for account 1234")

	body, contentType := multipartBody(t, map[string][]byte{"a.jpg": []byte("jpeg")})
	w := srv.do(http.MethodPost, "/api/v1/photos", srv.adminToken, contentType, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "api_secret")
	assert.Contains(t, w.Body.String(), "Upload failed")
}

func (s *testServer) photoCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Model(&models.Photo{}).Count(&n).Error)
	return n
}

func TestUploadPhotos_EmptyFileRejectsWholeBatch(t *testing.T) {
	srv := newTestServer(t)

	body, contentType := multipartBody(t, map[string][]byte{"a.jpg": []byte("jpeg-a"), "empty.jpg": {}})
	w := srv.do(http.MethodPost, "/api/v1/photos", srv.adminToken, contentType, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(errors.ErrCodeEmptyUpload))
	assert.Zero(t, srv.blobs.uploads)
	assert.Zero(t, srv.photoCount(t))
}

func TestUploadPhotos_PartialFailureRollsBack(t *testing.T) {
	srv := newTestServer(t)
	srv.blobs.err = fmt.Errorf("cloudinary: timeout")
	srv.blobs.failOn = 2

	body, contentType := multipartBody(t, map[string][]byte{"a.jpg": []byte("jpeg-a"), "b.jpg": []byte("jpeg-b")})
	w := srv.do(http.MethodPost, "/api/v1/photos", srv.adminToken, contentType, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Upload failed")

	assert.Equal(t, 2, srv.blobs.uploads)
	require.Len(t, srv.blobs.deleted, 1)
	assert.True(t, strings.HasPrefix(srv.blobs.deleted[0], "admin/"))
	assert.Zero(t, srv.photoCount(t))
}

func TestOwnedPhotos(t *testing.T) {
	srv := newTestServer(t)
	_, hotel, _ := srv.seedHotel(t, 80)
	base := fmt.Sprintf("/api/v1/hotels/%d/photos", hotel.ID)

	w := srv.doJSON(http.MethodPost, base, srv.adminToken, map[string]string{"url": "https://img.example.com/lobby.jpg"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	photo := decode[dto.PhotoDto](t, w)
	require.NotNil(t, photo.HotelID)

	w = srv.doJSON(http.MethodPost, base, srv.adminToken, map[string]string{"url": "not a url"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Len(t, decode[[]dto.PhotoDto](t, srv.do(http.MethodGet, base, "", "", nil)), 1)
	assert.Equal(t, http.StatusNoContent, srv.do(http.MethodDelete, fmt.Sprintf("%s/%d", base, photo.ID), srv.adminToken, "", nil).Code)
	assert.Empty(t, decode[[]dto.PhotoDto](t, srv.do(http.MethodGet, base, "", "", nil)))
}

func TestBookings(t *testing.T) {
	srv := newTestServer(t)
	_, _, room := srv.seedHotel(t, 100)

	request := map[string]interface{}{
		"roomId":        room.ID,
		"customerName":  "Dana Haddad",
		"checkIn":       "2024-07-01T14:00:00Z",
		"checkOut":      "2024-07-04T11:00:00Z",
		"paymentMethod": "Card",
	}

	assert.Equal(t, http.StatusUnauthorized, srv.doJSON(http.MethodPost, "/api/v1/bookings", "", request).Code)

	w := srv.doJSON(http.MethodPost, "/api/v1/bookings", srv.userToken, request)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	booking := decode[dto.BookingDetailsDto](t, w)
	assert.Equal(t, "20240601-0001", booking.ConfirmationNumber)
	assert.Equal(t, 300.0, booking.TotalCost)
	assert.Equal(t, "Grand Park", booking.HotelName)
	assert.Equal(t, constants.BookingStatusConfirmed, booking.BookingStatus)

	path := fmt.Sprintf("/api/v1/bookings/%d", booking.ID)
	assert.Equal(t, http.StatusOK, srv.do(http.MethodGet, path, srv.userToken, "", nil).Code)
	assert.Equal(t, http.StatusOK, srv.do(http.MethodGet, path, srv.adminToken, "", nil).Code)

	stranger := srv.token(t, srv.userID+100, "stranger", constants.RoleUser)
	assert.Equal(t, http.StatusNotFound, srv.do(http.MethodGet, path, stranger, "", nil).Code)

	w = srv.do(http.MethodGet, "/api/v1/bookings", stranger, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]dto.BookingDetailsDto](t, w))

	w = srv.do(http.MethodGet, "/api/v1/bookings", srv.adminToken, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.BookingDetailsDto](t, w), 1)
	assert.Equal(t, int64(1), paginationHeader(t, w).TotalItemCount)

	request["checkOut"] = "2024-06-30T11:00:00Z"
	assert.Equal(t, http.StatusBadRequest, srv.doJSON(http.MethodPost, "/api/v1/bookings", srv.userToken, request).Code)

	request["checkOut"] = "2024-07-04T11:00:00Z"
	request["roomId"] = 999
	assert.Equal(t, http.StatusNotFound, srv.doJSON(http.MethodPost, "/api/v1/bookings", srv.userToken, request).Code)
}

func TestBookings_RoomAvailability(t *testing.T) {
	srv := newTestServer(t)
	_, hotel, first := srv.seedHotel(t, 100)
	cost := 150.0
	second := &models.Room{RoomNumber: "102", Cost: &cost}
	require.NoError(t, srv.repo.AddRoomForHotel(context.Background(), hotel.ID, second))

	book := func(roomID uint, checkIn, checkOut string) *httptest.ResponseRecorder {
		return srv.doJSON(http.MethodPost, "/api/v1/bookings", srv.userToken, map[string]interface{}{
			"roomId": roomID, "customerName": "Dana", "checkIn": checkIn, "checkOut": checkOut, "paymentMethod": "Card",
		})
	}

	w := book(first.ID, "2024-07-01T14:00:00Z", "2024-07-03T11:00:00Z")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = book(second.ID, "2024-07-01T14:00:00Z", "2024-07-03T11:00:00Z")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "20240601-0002", decode[dto.BookingDetailsDto](t, w).ConfirmationNumber)

	w = book(second.ID, "2024-07-02T14:00:00Z", "2024-07-05T11:00:00Z")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), string(errors.ErrCodeInvalidOperation))

	// back-to-back stays do not overlap
	w = book(second.ID, "2024-07-03T14:00:00Z", "2024-07-05T11:00:00Z")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "20240601-0003", decode[dto.BookingDetailsDto](t, w).ConfirmationNumber)

	// removing the room drops its booking; numbering continues after the highest one left
	require.Equal(t, http.StatusNoContent, srv.do(http.MethodDelete, fmt.Sprintf("/api/v1/rooms/%d", first.ID), srv.adminToken, "", nil).Code)
	w = book(second.ID, "2024-08-01T14:00:00Z", "2024-08-02T11:00:00Z")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "20240601-0004", decode[dto.BookingDetailsDto](t, w).ConfirmationNumber)
}

func TestSearch(t *testing.T) {
	srv := newTestServer(t)
	_, hotel, _ := srv.seedHotel(t, 120)
	require.NoError(t, srv.repo.CreateRoomAmenity(context.Background(), &models.RoomAmenity{Name: "Free Wi-Fi"}))

	w := srv.do(http.MethodGet, "/api/v1/search-results?query=luxury+hotel+in+ramallah", "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	results := decode[[]dto.SearchResultDto](t, w)
	require.Len(t, results, 1)
	assert.Equal(t, hotel.ID, results[0].HotelID)
	assert.Equal(t, 120.0, results[0].RoomPrice)
	assert.Positive(t, results[0].Score)

	w = srv.do(http.MethodGet, "/api/v1/search-results/amenities", "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	amenities := decode[[]dto.FilterAmenityDto](t, w)
	require.Len(t, amenities, 1)
	assert.Equal(t, "Free Wi-Fi", amenities[0].Name)
}

func TestPing(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(http.MethodGet, "/ping", "", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
