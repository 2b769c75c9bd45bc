package controllers

import (
	"hotelinfo/constants"
	"hotelinfo/dto"
	"hotelinfo/repository"
	"hotelinfo/response"
	"hotelinfo/services"
	"hotelinfo/services/logger"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	repo  repository.HotelInfoRepository
	cache services.Cache
	log   logger.Logger
}

func NewHotelController(repo repository.HotelInfoRepository, cache services.Cache, log logger.Logger) *HotelController {
	return &HotelController{repo: repo, cache: cache, log: log}
}

// GetHotels godoc
// @Summary List hotels
// @Tags hotels
// @Param name query string false "filter by name"
// @Param searchQuery query string false "search name and description"
// @Param pageSize query int false "page size, max 20"
// @Param pageNumber query int false "page number"
// @Success 200 {array} dto.HotelWithoutRooms
// @Router /hotels [get]
func (hc *HotelController) GetHotels(c *gin.Context) {
	filter, ok := bindListQuery(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	key := listCacheKey(constants.CacheKeyHotels, filter)
	if page, ok := readCachedPage[dto.HotelWithoutRooms](ctx, hc.cache, hc.log, key); ok {
		response.SuccessWithPagination(c, page.Items, page.Meta)
		return
	}

	hotels, meta, err := hc.repo.ListHotels(ctx, filter)
	if err != nil {
		c.Error(err)
		return
	}

	items := dto.ToHotelWithoutRoomsList(hotels)
	writeCachedPage(ctx, hc.cache, hc.log, key, items, meta)
	response.SuccessWithPagination(c, items, meta)
}

// GetHotel godoc
// @Summary Get a hotel
// @Tags hotels
// @Param hotelId path int true "hotel id"
// @Param includeRooms query bool false "include the hotel's rooms"
// @Success 200 {object} dto.HotelDto
// @Failure 404 {object} response.Response
// @Router /hotels/{hotelId} [get]
func (hc *HotelController) GetHotel(c *gin.Context) {
	id, ok := parseID(c, "hotelId")
	if !ok {
		return
	}
	includeRooms, ok := queryBool(c, "includeRooms")
	if !ok {
		return
	}

	hotel, err := hc.repo.GetHotel(c.Request.Context(), id, includeRooms)
	if err != nil {
		c.Error(err)
		return
	}
	if includeRooms {
		response.Success(c, dto.ToHotelDto(*hotel))
		return
	}
	response.Success(c, dto.ToHotelWithoutRooms(*hotel))
}

// UpdateHotel godoc
// @Summary Replace a hotel
// @Tags hotels
// @Security Bearer
// @Param hotelId path int true "hotel id"
// @Param hotel body dto.HotelForUpdate true "hotel"
// @Success 204
// @Router /hotels/{hotelId} [put]
func (hc *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := parseID(c, "hotelId")
	if !ok {
		return
	}
	var input dto.HotelForUpdate
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	hotel, err := hc.repo.GetHotel(ctx, id, false)
	if err != nil {
		c.Error(err)
		return
	}
	input.ApplyTo(hotel)
	if err := hc.repo.UpdateHotel(ctx, hotel); err != nil {
		c.Error(err)
		return
	}
	hc.invalidate(c)
	response.NoContent(c)
}

// PartiallyUpdateHotel godoc
// @Summary Patch a hotel
// @Tags hotels
// @Security Bearer
// @Param hotelId path int true "hotel id"
// @Success 204
// @Router /hotels/{hotelId} [patch]
func (hc *HotelController) PartiallyUpdateHotel(c *gin.Context) {
	id, ok := parseID(c, "hotelId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	hotel, err := hc.repo.GetHotel(ctx, id, false)
	if err != nil {
		c.Error(err)
		return
	}

	var patched dto.HotelForUpdate
	if !bindPatch(c, dto.ToHotelForUpdate(*hotel), &patched) {
		return
	}
	patched.ApplyTo(hotel)
	if err := hc.repo.UpdateHotel(ctx, hotel); err != nil {
		c.Error(err)
		return
	}
	hc.invalidate(c)
	response.NoContent(c)
}

// DeleteHotel godoc
// @Summary Delete a hotel and its rooms
// @Tags hotels
// @Security Bearer
// @Param hotelId path int true "hotel id"
// @Success 204
// @Router /hotels/{hotelId} [delete]
func (hc *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := parseID(c, "hotelId")
	if !ok {
		return
	}
	if err := hc.repo.DeleteHotel(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	hc.invalidate(c)
	response.NoContent(c)
}

// GetRoomsForHotel godoc
// @Summary List a hotel's rooms
// @Tags hotels
// @Param hotelId path int true "hotel id"
// @Success 200 {array} dto.RoomDto
// @Router /hotels/{hotelId}/rooms [get]
func (hc *HotelController) GetRoomsForHotel(c *gin.Context) {
	id, ok := parseID(c, "hotelId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if !requireExists(c, hc.repo.HotelExists, id) {
		return
	}
	rooms, err := hc.repo.ListRoomsForHotel(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.ToRoomDtoList(rooms))
}

// CreateRoomForHotel godoc
// @Summary Create a room in a hotel
// @Tags hotels
// @Security Bearer
// @Param hotelId path int true "hotel id"
// @Param room body dto.RoomForCreation true "room"
// @Success 201 {object} dto.RoomDto
// @Failure 404 {object} response.Response
// @Router /hotels/{hotelId}/rooms [post]
func (hc *HotelController) CreateRoomForHotel(c *gin.Context) {
	id, ok := parseID(c, "hotelId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if !requireExists(c, hc.repo.HotelExists, id) {
		return
	}

	var input dto.RoomForCreation
	if !bindJSON(c, &input) {
		return
	}
	room := input.ToModel()
	if err := hc.repo.AddRoomForHotel(ctx, id, &room); err != nil {
		c.Error(err)
		return
	}
	hc.invalidate(c)
	response.Created(c, location("/rooms/%d", room.ID), dto.ToRoomDto(room))
}

// DeleteRoomForHotel godoc
// @Summary Delete a room of a hotel
// @Tags hotels
// @Security Bearer
// @Param hotelId path int true "hotel id"
// @Param roomId path int true "room id"
// @Success 204
// @Router /hotels/{hotelId}/rooms/{roomId} [delete]
func (hc *HotelController) DeleteRoomForHotel(c *gin.Context) {
	hotelID, ok := parseID(c, "hotelId")
	if !ok {
		return
	}
	roomID, ok := parseID(c, "roomId")
	if !ok {
		return
	}
	if err := hc.repo.DeleteRoomForHotel(c.Request.Context(), hotelID, roomID); err != nil {
		c.Error(err)
		return
	}
	hc.invalidate(c)
	response.NoContent(c)
}

// GetAmenitiesForHotel godoc
// @Summary List a hotel's amenities
// @Tags hotels
// @Param hotelId path int true "hotel id"
// @Success 200 {array} dto.AmenityDto
// @Router /hotels/{hotelId}/amenities [get]
func (hc *HotelController) GetAmenitiesForHotel(c *gin.Context) {
	id, ok := parseID(c, "hotelId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if !requireExists(c, hc.repo.HotelExists, id) {
		return
	}
	amenities, err := hc.repo.ListHotelAmenitiesForHotel(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.ToHotelAmenityDtoList(amenities))
}

// CreateAmenityForHotel godoc
// @Summary Create an amenity and link it to a hotel
// @Tags hotels
// @Security Bearer
// @Param hotelId path int true "hotel id"
// @Param amenity body dto.AmenityForCreation true "amenity"
// @Success 201 {object} dto.AmenityDto
// @Router /hotels/{hotelId}/amenities [post]
func (hc *HotelController) CreateAmenityForHotel(c *gin.Context) {
	id, ok := parseID(c, "hotelId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if !requireExists(c, hc.repo.HotelExists, id) {
		return
	}

	var input dto.AmenityForCreation
	if !bindJSON(c, &input) {
		return
	}
	amenity := input.ToHotelAmenity()
	if err := hc.repo.AddHotelAmenityForHotel(ctx, id, &amenity); err != nil {
		c.Error(err)
		return
	}
	hc.invalidate(c)
	response.Created(c, location("/hotel-amenities/%d", amenity.ID), dto.ToHotelAmenityDto(amenity))
}

// RemoveAmenityFromHotel godoc
// @Summary Unlink an amenity from a hotel
// @Tags hotels
// @Security Bearer
// @Param hotelId path int true "hotel id"
// @Param amenityId path int true "amenity id"
// @Success 204
// @Router /hotels/{hotelId}/amenities/{amenityId} [delete]
func (hc *HotelController) RemoveAmenityFromHotel(c *gin.Context) {
	hotelID, ok := parseID(c, "hotelId")
	if !ok {
		return
	}
	amenityID, ok := parseID(c, "amenityId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if !requireExists(c, hc.repo.HotelExists, hotelID) {
		return
	}
	if err := hc.repo.RemoveHotelAmenityFromHotel(ctx, hotelID, amenityID); err != nil {
		c.Error(err)
		return
	}
	hc.invalidate(c)
	response.NoContent(c)
}

func (hc *HotelController) invalidate(c *gin.Context) {
	invalidate(c.Request.Context(), hc.cache, hc.log, constants.CacheKeyHotels, constants.CacheKeyCities)
}
