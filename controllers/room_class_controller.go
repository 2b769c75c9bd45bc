package controllers

import (
	"net/http"
	"strconv"

	"hotelinfo/constants"
	"hotelinfo/dto"
	"hotelinfo/errors"
	"hotelinfo/repository"
	"hotelinfo/response"
	"hotelinfo/services"
	"hotelinfo/services/logger"

	"github.com/gin-gonic/gin"
)

type RoomClassController struct {
	repo  repository.HotelInfoRepository
	cache services.Cache
	log   logger.Logger
}

func NewRoomClassController(repo repository.HotelInfoRepository, cache services.Cache, log logger.Logger) *RoomClassController {
	return &RoomClassController{repo: repo, cache: cache, log: log}
}

// GetRoomClasses godoc
// @Summary List room classes
// @Tags room-classes
// @Param name query string false "filter by description"
// @Param pageSize query int false "page size, max 20"
// @Param pageNumber query int false "page number"
// @Success 200 {array} dto.RoomClassDto
// @Router /room-classes [get]
func (rc *RoomClassController) GetRoomClasses(c *gin.Context) {
	filter, ok := bindListQuery(c)
	if !ok {
		return
	}
	classes, meta, err := rc.repo.ListRoomClasses(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithPagination(c, dto.ToRoomClassDtoList(classes), meta)
}

// GetRoomClass godoc
// @Summary Get a room class
// @Tags room-classes
// @Param roomClassId path int true "room class id"
// @Success 200 {object} dto.RoomClassDto
// @Failure 404 {object} response.Response
// @Router /room-classes/{roomClassId} [get]
func (rc *RoomClassController) GetRoomClass(c *gin.Context) {
	id, ok := parseID(c, "roomClassId")
	if !ok {
		return
	}
	roomClass, err := rc.repo.GetRoomClass(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.ToRoomClassDto(*roomClass))
}

// CreateRoomClass godoc
// @Summary Create a room class
// @Tags room-classes
// @Security Bearer
// @Param roomClass body dto.RoomClassForCreation true "room class"
// @Success 201 {object} dto.RoomClassDto
// @Router /room-classes [post]
func (rc *RoomClassController) CreateRoomClass(c *gin.Context) {
	var input dto.RoomClassForCreation
	if !bindJSON(c, &input) {
		return
	}
	roomClass := input.ToModel()
	if err := rc.repo.CreateRoomClass(c.Request.Context(), &roomClass); err != nil {
		c.Error(err)
		return
	}
	response.Created(c, location("/room-classes/%d", roomClass.ID), dto.ToRoomClassDto(roomClass))
}

// UpdateRoomClass godoc
// @Summary Replace a room class
// @Tags room-classes
// @Security Bearer
// @Param roomClassId path int true "room class id"
// @Param roomClass body dto.RoomClassForUpdate true "room class"
// @Success 204
// @Router /room-classes/{roomClassId} [put]
func (rc *RoomClassController) UpdateRoomClass(c *gin.Context) {
	id, ok := parseID(c, "roomClassId")
	if !ok {
		return
	}
	var input dto.RoomClassForUpdate
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	roomClass, err := rc.repo.GetRoomClass(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	input.ApplyTo(roomClass)
	if err := rc.repo.UpdateRoomClass(ctx, roomClass); err != nil {
		c.Error(err)
		return
	}
	rc.invalidate(c)
	response.NoContent(c)
}

// PartiallyUpdateRoomClass godoc
// @Summary Patch a room class
// @Tags room-classes
// @Security Bearer
// @Param roomClassId path int true "room class id"
// @Success 204
// @Router /room-classes/{roomClassId} [patch]
func (rc *RoomClassController) PartiallyUpdateRoomClass(c *gin.Context) {
	id, ok := parseID(c, "roomClassId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	roomClass, err := rc.repo.GetRoomClass(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}

	var patched dto.RoomClassForUpdate
	if !bindPatch(c, dto.ToRoomClassForUpdate(*roomClass), &patched) {
		return
	}
	patched.ApplyTo(roomClass)
	if err := rc.repo.UpdateRoomClass(ctx, roomClass); err != nil {
		c.Error(err)
		return
	}
	rc.invalidate(c)
	response.NoContent(c)
}

// DeleteRoomClass godoc
// @Summary Delete a room class
// @Description Rooms of the class are kept and unassigned.
// @Tags room-classes
// @Security Bearer
// @Param roomClassId path int true "room class id"
// @Success 204
// @Router /room-classes/{roomClassId} [delete]
func (rc *RoomClassController) DeleteRoomClass(c *gin.Context) {
	id, ok := parseID(c, "roomClassId")
	if !ok {
		return
	}
	if err := rc.repo.DeleteRoomClass(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	rc.invalidate(c)
	response.NoContent(c)
}

// GetRoomsForRoomClass godoc
// @Summary List the rooms of a room class
// @Tags room-classes
// @Param roomClassId path int true "room class id"
// @Success 200 {array} dto.RoomDto
// @Router /room-classes/{roomClassId}/rooms [get]
func (rc *RoomClassController) GetRoomsForRoomClass(c *gin.Context) {
	id, ok := parseID(c, "roomClassId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if !requireExists(c, rc.repo.RoomClassExists, id) {
		return
	}
	rooms, err := rc.repo.ListRoomsForRoomClass(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.ToRoomDtoList(rooms))
}

// AssignRoomToRoomClass godoc
// @Summary Assign an existing room to a room class
// @Description A room without its own cost takes the class's standard cost.
// @Tags room-classes
// @Security Bearer
// @Param roomClassId path int true "room class id"
// @Param roomId query int true "room id"
// @Success 201 {object} dto.RoomDto
// @Failure 404 {object} response.Response
// @Router /room-classes/{roomClassId}/rooms [post]
func (rc *RoomClassController) AssignRoomToRoomClass(c *gin.Context) {
	id, ok := parseID(c, "roomClassId")
	if !ok {
		return
	}
	roomID, err := strconv.ParseUint(c.Query("roomId"), 10, 64)
	if err != nil || roomID == 0 {
		response.Error(c, http.StatusBadRequest, errors.ErrCodeInvalidID, "roomId must be a positive integer")
		return
	}

	room, err := rc.repo.AssignRoomToRoomClass(c.Request.Context(), id, uint(roomID))
	if err != nil {
		c.Error(err)
		return
	}
	rc.invalidate(c)
	response.Created(c, location("/rooms/%d", room.ID), dto.ToRoomDto(*room))
}

// UnassignRoomFromRoomClass godoc
// @Summary Remove a room from a room class
// @Tags room-classes
// @Security Bearer
// @Param roomClassId path int true "room class id"
// @Param roomId path int true "room id"
// @Success 204
// @Router /room-classes/{roomClassId}/rooms/{roomId} [delete]
func (rc *RoomClassController) UnassignRoomFromRoomClass(c *gin.Context) {
	id, ok := parseID(c, "roomClassId")
	if !ok {
		return
	}
	roomID, ok := parseID(c, "roomId")
	if !ok {
		return
	}
	if err := rc.repo.UnassignRoomFromRoomClass(c.Request.Context(), id, roomID); err != nil {
		c.Error(err)
		return
	}
	rc.invalidate(c)
	response.NoContent(c)
}

// GetAmenitiesForRoomClass godoc
// @Summary List a room class's amenities
// @Tags room-classes
// @Param roomClassId path int true "room class id"
// @Success 200 {array} dto.AmenityDto
// @Router /room-classes/{roomClassId}/amenities [get]
func (rc *RoomClassController) GetAmenitiesForRoomClass(c *gin.Context) {
	id, ok := parseID(c, "roomClassId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if !requireExists(c, rc.repo.RoomClassExists, id) {
		return
	}
	amenities, err := rc.repo.ListRoomAmenitiesForRoomClass(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.ToRoomAmenityDtoList(amenities))
}

// CreateAmenityForRoomClass godoc
// @Summary Create an amenity and link it to a room class
// @Tags room-classes
// @Security Bearer
// @Param roomClassId path int true "room class id"
// @Param amenity body dto.AmenityForCreation true "amenity"
// @Success 201 {object} dto.AmenityDto
// @Router /room-classes/{roomClassId}/amenities [post]
func (rc *RoomClassController) CreateAmenityForRoomClass(c *gin.Context) {
	id, ok := parseID(c, "roomClassId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if !requireExists(c, rc.repo.RoomClassExists, id) {
		return
	}

	var input dto.AmenityForCreation
	if !bindJSON(c, &input) {
		return
	}
	amenity := input.ToRoomAmenity()
	if err := rc.repo.AddRoomAmenityForRoomClass(ctx, id, &amenity); err != nil {
		c.Error(err)
		return
	}
	invalidate(ctx, rc.cache, rc.log, constants.CacheKeySearchAmenities)
	response.Created(c, location("/room-amenities/%d", amenity.ID), dto.ToRoomAmenityDto(amenity))
}

// RemoveAmenityFromRoomClass godoc
// @Summary Unlink an amenity from a room class
// @Tags room-classes
// @Security Bearer
// @Param roomClassId path int true "room class id"
// @Param amenityId path int true "amenity id"
// @Success 204
// @Router /room-classes/{roomClassId}/amenities/{amenityId} [delete]
func (rc *RoomClassController) RemoveAmenityFromRoomClass(c *gin.Context) {
	id, ok := parseID(c, "roomClassId")
	if !ok {
		return
	}
	amenityID, ok := parseID(c, "amenityId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if !requireExists(c, rc.repo.RoomClassExists, id) {
		return
	}
	if err := rc.repo.RemoveRoomAmenityFromRoomClass(ctx, id, amenityID); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}

func (rc *RoomClassController) invalidate(c *gin.Context) {
	invalidate(c.Request.Context(), rc.cache, rc.log, constants.CacheKeyHotels)
}
