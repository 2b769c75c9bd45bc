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

// AmenityController serves /hotel-amenities and /room-amenities.
type AmenityController struct {
	repo  repository.HotelInfoRepository
	cache services.Cache
	log   logger.Logger
}

func NewAmenityController(repo repository.HotelInfoRepository, cache services.Cache, log logger.Logger) *AmenityController {
	return &AmenityController{repo: repo, cache: cache, log: log}
}

// GetHotelAmenities godoc
// @Summary List hotel amenities
// @Tags amenities
// @Param name query string false "filter by name"
// @Param pageSize query int false "page size, max 20"
// @Param pageNumber query int false "page number"
// @Success 200 {array} dto.AmenityDto
// @Router /hotel-amenities [get]
func (ac *AmenityController) GetHotelAmenities(c *gin.Context) {
	filter, ok := bindListQuery(c)
	if !ok {
		return
	}
	amenities, meta, err := ac.repo.ListHotelAmenities(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithPagination(c, dto.ToHotelAmenityDtoList(amenities), meta)
}

// GetHotelAmenity godoc
// @Summary Get a hotel amenity
// @Tags amenities
// @Param amenityId path int true "amenity id"
// @Success 200 {object} dto.AmenityDto
// @Router /hotel-amenities/{amenityId} [get]
func (ac *AmenityController) GetHotelAmenity(c *gin.Context) {
	id, ok := parseID(c, "amenityId")
	if !ok {
		return
	}
	amenity, err := ac.repo.GetHotelAmenity(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.ToHotelAmenityDto(*amenity))
}

// CreateHotelAmenity godoc
// @Summary Create a hotel amenity
// @Tags amenities
// @Security Bearer
// @Param amenity body dto.AmenityForCreation true "amenity"
// @Success 201 {object} dto.AmenityDto
// @Router /hotel-amenities [post]
func (ac *AmenityController) CreateHotelAmenity(c *gin.Context) {
	var input dto.AmenityForCreation
	if !bindJSON(c, &input) {
		return
	}
	amenity := input.ToHotelAmenity()
	if err := ac.repo.CreateHotelAmenity(c.Request.Context(), &amenity); err != nil {
		c.Error(err)
		return
	}
	response.Created(c, location("/hotel-amenities/%d", amenity.ID), dto.ToHotelAmenityDto(amenity))
}

// UpdateHotelAmenity godoc
// @Summary Replace a hotel amenity
// @Tags amenities
// @Security Bearer
// @Param amenityId path int true "amenity id"
// @Param amenity body dto.AmenityForUpdate true "amenity"
// @Success 204
// @Router /hotel-amenities/{amenityId} [put]
func (ac *AmenityController) UpdateHotelAmenity(c *gin.Context) {
	id, ok := parseID(c, "amenityId")
	if !ok {
		return
	}
	var input dto.AmenityForUpdate
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	amenity, err := ac.repo.GetHotelAmenity(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	amenity.Name, amenity.Description = input.Name, input.Description
	if err := ac.repo.UpdateHotelAmenity(ctx, amenity); err != nil {
		c.Error(err)
		return
	}
	ac.invalidate(c, constants.CacheKeyHotels)
	response.NoContent(c)
}

// PartiallyUpdateHotelAmenity godoc
// @Summary Patch a hotel amenity
// @Tags amenities
// @Security Bearer
// @Param amenityId path int true "amenity id"
// @Success 204
// @Router /hotel-amenities/{amenityId} [patch]
func (ac *AmenityController) PartiallyUpdateHotelAmenity(c *gin.Context) {
	id, ok := parseID(c, "amenityId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	amenity, err := ac.repo.GetHotelAmenity(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}

	var patched dto.AmenityForUpdate
	if !bindPatch(c, dto.ToAmenityForUpdate(amenity.Name, amenity.Description), &patched) {
		return
	}
	amenity.Name, amenity.Description = patched.Name, patched.Description
	if err := ac.repo.UpdateHotelAmenity(ctx, amenity); err != nil {
		c.Error(err)
		return
	}
	ac.invalidate(c, constants.CacheKeyHotels)
	response.NoContent(c)
}

// DeleteHotelAmenity godoc
// @Summary Delete a hotel amenity
// @Tags amenities
// @Security Bearer
// @Param amenityId path int true "amenity id"
// @Success 204
// @Router /hotel-amenities/{amenityId} [delete]
func (ac *AmenityController) DeleteHotelAmenity(c *gin.Context) {
	id, ok := parseID(c, "amenityId")
	if !ok {
		return
	}
	if err := ac.repo.DeleteHotelAmenity(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	ac.invalidate(c, constants.CacheKeyHotels)
	response.NoContent(c)
}

// GetRoomAmenities godoc
// @Summary List room amenities
// @Tags amenities
// @Param name query string false "filter by name"
// @Param pageSize query int false "page size, max 20"
// @Param pageNumber query int false "page number"
// @Success 200 {array} dto.AmenityDto
// @Router /room-amenities [get]
func (ac *AmenityController) GetRoomAmenities(c *gin.Context) {
	filter, ok := bindListQuery(c)
	if !ok {
		return
	}
	amenities, meta, err := ac.repo.ListRoomAmenities(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithPagination(c, dto.ToRoomAmenityDtoList(amenities), meta)
}

// GetRoomAmenity godoc
// @Summary Get a room amenity
// @Tags amenities
// @Param amenityId path int true "amenity id"
// @Success 200 {object} dto.AmenityDto
// @Router /room-amenities/{amenityId} [get]
func (ac *AmenityController) GetRoomAmenity(c *gin.Context) {
	id, ok := parseID(c, "amenityId")
	if !ok {
		return
	}
	amenity, err := ac.repo.GetRoomAmenity(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.ToRoomAmenityDto(*amenity))
}

// CreateRoomAmenity godoc
// @Summary Create a room amenity
// @Tags amenities
// @Security Bearer
// @Param amenity body dto.AmenityForCreation true "amenity"
// @Success 201 {object} dto.AmenityDto
// @Router /room-amenities [post]
func (ac *AmenityController) CreateRoomAmenity(c *gin.Context) {
	var input dto.AmenityForCreation
	if !bindJSON(c, &input) {
		return
	}
	amenity := input.ToRoomAmenity()
	if err := ac.repo.CreateRoomAmenity(c.Request.Context(), &amenity); err != nil {
		c.Error(err)
		return
	}
	ac.invalidate(c, constants.CacheKeySearchAmenities)
	response.Created(c, location("/room-amenities/%d", amenity.ID), dto.ToRoomAmenityDto(amenity))
}

// UpdateRoomAmenity godoc
// @Summary Replace a room amenity
// @Tags amenities
// @Security Bearer
// @Param amenityId path int true "amenity id"
// @Param amenity body dto.AmenityForUpdate true "amenity"
// @Success 204
// @Router /room-amenities/{amenityId} [put]
func (ac *AmenityController) UpdateRoomAmenity(c *gin.Context) {
	id, ok := parseID(c, "amenityId")
	if !ok {
		return
	}
	var input dto.AmenityForUpdate
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	amenity, err := ac.repo.GetRoomAmenity(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	amenity.Name, amenity.Description = input.Name, input.Description
	if err := ac.repo.UpdateRoomAmenity(ctx, amenity); err != nil {
		c.Error(err)
		return
	}
	ac.invalidate(c, constants.CacheKeySearchAmenities)
	response.NoContent(c)
}

// PartiallyUpdateRoomAmenity godoc
// @Summary Patch a room amenity
// @Tags amenities
// @Security Bearer
// @Param amenityId path int true "amenity id"
// @Success 204
// @Router /room-amenities/{amenityId} [patch]
func (ac *AmenityController) PartiallyUpdateRoomAmenity(c *gin.Context) {
	id, ok := parseID(c, "amenityId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	amenity, err := ac.repo.GetRoomAmenity(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}

	var patched dto.AmenityForUpdate
	if !bindPatch(c, dto.ToAmenityForUpdate(amenity.Name, amenity.Description), &patched) {
		return
	}
	amenity.Name, amenity.Description = patched.Name, patched.Description
	if err := ac.repo.UpdateRoomAmenity(ctx, amenity); err != nil {
		c.Error(err)
		return
	}
	ac.invalidate(c, constants.CacheKeySearchAmenities)
	response.NoContent(c)
}

// DeleteRoomAmenity godoc
// @Summary Delete a room amenity
// @Tags amenities
// @Security Bearer
// @Param amenityId path int true "amenity id"
// @Success 204
// @Router /room-amenities/{amenityId} [delete]
func (ac *AmenityController) DeleteRoomAmenity(c *gin.Context) {
	id, ok := parseID(c, "amenityId")
	if !ok {
		return
	}
	if err := ac.repo.DeleteRoomAmenity(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	ac.invalidate(c, constants.CacheKeySearchAmenities)
	response.NoContent(c)
}

func (ac *AmenityController) invalidate(c *gin.Context, prefixes ...string) {
	invalidate(c.Request.Context(), ac.cache, ac.log, prefixes...)
}
