package controllers

import (
	"strings"

	"hotelinfo/constants"
	"hotelinfo/dto"
	"hotelinfo/repository"
	"hotelinfo/response"
	"hotelinfo/services"
	"hotelinfo/services/logger"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	repo  repository.HotelInfoRepository
	cache services.Cache
	log   logger.Logger
}

func NewRoomController(repo repository.HotelInfoRepository, cache services.Cache, log logger.Logger) *RoomController {
	return &RoomController{repo: repo, cache: cache, log: log}
}

// GetRooms godoc
// @Summary List rooms
// @Tags rooms
// @Param roomNumber query string false "filter by room number"
// @Param pageSize query int false "page size, max 20"
// @Param pageNumber query int false "page number"
// @Success 200 {array} dto.RoomDto
// @Router /rooms [get]
func (rc *RoomController) GetRooms(c *gin.Context) {
	filter, ok := bindListQuery(c)
	if !ok {
		return
	}
	if roomNumber := strings.TrimSpace(c.Query("roomNumber")); roomNumber != "" {
		filter.Name = roomNumber
	}

	rooms, meta, err := rc.repo.ListRooms(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithPagination(c, dto.ToRoomDtoList(rooms), meta)
}

// GetRoom godoc
// @Summary Get a room
// @Tags rooms
// @Param roomId path int true "room id"
// @Success 200 {object} dto.RoomDto
// @Failure 404 {object} response.Response
// @Router /rooms/{roomId} [get]
func (rc *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseID(c, "roomId")
	if !ok {
		return
	}
	room, err := rc.repo.GetRoom(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.ToRoomDto(*room))
}

// UpdateRoom godoc
// @Summary Replace a room
// @Tags rooms
// @Security Bearer
// @Param roomId path int true "room id"
// @Param room body dto.RoomForUpdate true "room"
// @Success 204
// @Router /rooms/{roomId} [put]
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c, "roomId")
	if !ok {
		return
	}
	var input dto.RoomForUpdate
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	room, err := rc.repo.GetRoom(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	input.ApplyTo(room)
	if err := rc.repo.UpdateRoom(ctx, room); err != nil {
		c.Error(err)
		return
	}
	rc.invalidate(c)
	response.NoContent(c)
}

// PartiallyUpdateRoom godoc
// @Summary Patch a room
// @Tags rooms
// @Security Bearer
// @Param roomId path int true "room id"
// @Success 204
// @Router /rooms/{roomId} [patch]
func (rc *RoomController) PartiallyUpdateRoom(c *gin.Context) {
	id, ok := parseID(c, "roomId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	room, err := rc.repo.GetRoom(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}

	var patched dto.RoomForUpdate
	if !bindPatch(c, dto.ToRoomForUpdate(*room), &patched) {
		return
	}
	patched.ApplyTo(room)
	if err := rc.repo.UpdateRoom(ctx, room); err != nil {
		c.Error(err)
		return
	}
	rc.invalidate(c)
	response.NoContent(c)
}

// DeleteRoom godoc
// @Summary Delete a room
// @Tags rooms
// @Security Bearer
// @Param roomId path int true "room id"
// @Success 204
// @Router /rooms/{roomId} [delete]
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c, "roomId")
	if !ok {
		return
	}
	if err := rc.repo.DeleteRoom(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	rc.invalidate(c)
	response.NoContent(c)
}

// GetAmenitiesForRoom godoc
// @Summary List a room's amenities
// @Tags rooms
// @Param roomId path int true "room id"
// @Success 200 {array} dto.AmenityDto
// @Router /rooms/{roomId}/amenities [get]
func (rc *RoomController) GetAmenitiesForRoom(c *gin.Context) {
	id, ok := parseID(c, "roomId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if !requireExists(c, rc.repo.RoomExists, id) {
		return
	}
	amenities, err := rc.repo.ListRoomAmenitiesForRoom(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.ToRoomAmenityDtoList(amenities))
}

// CreateAmenityForRoom godoc
// @Summary Create an amenity and link it to a room
// @Tags rooms
// @Security Bearer
// @Param roomId path int true "room id"
// @Param amenity body dto.AmenityForCreation true "amenity"
// @Success 201 {object} dto.AmenityDto
// @Router /rooms/{roomId}/amenities [post]
func (rc *RoomController) CreateAmenityForRoom(c *gin.Context) {
	id, ok := parseID(c, "roomId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if !requireExists(c, rc.repo.RoomExists, id) {
		return
	}

	var input dto.AmenityForCreation
	if !bindJSON(c, &input) {
		return
	}
	amenity := input.ToRoomAmenity()
	if err := rc.repo.AddRoomAmenityForRoom(ctx, id, &amenity); err != nil {
		c.Error(err)
		return
	}
	invalidate(ctx, rc.cache, rc.log, constants.CacheKeySearchAmenities)
	response.Created(c, location("/room-amenities/%d", amenity.ID), dto.ToRoomAmenityDto(amenity))
}

// RemoveAmenityFromRoom godoc
// @Summary Unlink an amenity from a room
// @Tags rooms
// @Security Bearer
// @Param roomId path int true "room id"
// @Param amenityId path int true "amenity id"
// @Success 204
// @Router /rooms/{roomId}/amenities/{amenityId} [delete]
func (rc *RoomController) RemoveAmenityFromRoom(c *gin.Context) {
	roomID, ok := parseID(c, "roomId")
	if !ok {
		return
	}
	amenityID, ok := parseID(c, "amenityId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if !requireExists(c, rc.repo.RoomExists, roomID) {
		return
	}
	if err := rc.repo.RemoveRoomAmenityFromRoom(ctx, roomID, amenityID); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}

func (rc *RoomController) invalidate(c *gin.Context) {
	invalidate(c.Request.Context(), rc.cache, rc.log, constants.CacheKeyHotels)
}
