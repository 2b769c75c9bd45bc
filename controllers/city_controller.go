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

type CityController struct {
	repo  repository.HotelInfoRepository
	cache services.Cache
	log   logger.Logger
}

func NewCityController(repo repository.HotelInfoRepository, cache services.Cache, log logger.Logger) *CityController {
	return &CityController{repo: repo, cache: cache, log: log}
}

// GetCities godoc
// @Summary List cities
// @Tags cities
// @Param name query string false "filter by name"
// @Param searchQuery query string false "search name and description"
// @Param pageSize query int false "page size, max 20"
// @Param pageNumber query int false "page number"
// @Success 200 {array} dto.CityWithoutHotels
// @Router /cities [get]
func (cc *CityController) GetCities(c *gin.Context) {
	filter, ok := bindListQuery(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	key := listCacheKey(constants.CacheKeyCities, filter)
	if page, ok := readCachedPage[dto.CityWithoutHotels](ctx, cc.cache, cc.log, key); ok {
		response.SuccessWithPagination(c, page.Items, page.Meta)
		return
	}

	cities, meta, err := cc.repo.ListCities(ctx, filter)
	if err != nil {
		c.Error(err)
		return
	}

	items := dto.ToCityWithoutHotelsList(cities)
	writeCachedPage(ctx, cc.cache, cc.log, key, items, meta)
	response.SuccessWithPagination(c, items, meta)
}

// GetCity godoc
// @Summary Get a city
// @Tags cities
// @Param cityId path int true "city id"
// @Param includeHotels query bool false "include the city's hotels"
// @Success 200 {object} dto.CityDto
// @Failure 404 {object} response.Response
// @Router /cities/{cityId} [get]
func (cc *CityController) GetCity(c *gin.Context) {
	id, ok := parseID(c, "cityId")
	if !ok {
		return
	}
	includeHotels, ok := queryBool(c, "includeHotels")
	if !ok {
		return
	}

	city, err := cc.repo.GetCity(c.Request.Context(), id, includeHotels)
	if err != nil {
		c.Error(err)
		return
	}

	if includeHotels {
		response.Success(c, dto.ToCityDto(*city))
		return
	}
	response.Success(c, dto.ToCityWithoutHotels(*city))
}

// CreateCity godoc
// @Summary Create a city
// @Tags cities
// @Security Bearer
// @Param city body dto.CityForCreation true "city"
// @Success 201 {object} dto.CityDto
// @Failure 400 {object} response.Response
// @Router /cities [post]
func (cc *CityController) CreateCity(c *gin.Context) {
	var input dto.CityForCreation
	if !bindJSON(c, &input) {
		return
	}

	city := input.ToModel()
	if err := cc.repo.CreateCity(c.Request.Context(), &city); err != nil {
		c.Error(err)
		return
	}

	cc.invalidate(c)
	response.Created(c, location("/cities/%d", city.ID), dto.ToCityDto(city))
}

// UpdateCity godoc
// @Summary Replace a city
// @Tags cities
// @Security Bearer
// @Param cityId path int true "city id"
// @Param city body dto.CityForUpdate true "city"
// @Success 204
// @Router /cities/{cityId} [put]
func (cc *CityController) UpdateCity(c *gin.Context) {
	id, ok := parseID(c, "cityId")
	if !ok {
		return
	}
	var input dto.CityForUpdate
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	city, err := cc.repo.GetCity(ctx, id, false)
	if err != nil {
		c.Error(err)
		return
	}

	input.ApplyTo(city)
	if err := cc.repo.UpdateCity(ctx, city); err != nil {
		c.Error(err)
		return
	}

	cc.invalidate(c)
	response.NoContent(c)
}

// PartiallyUpdateCity godoc
// @Summary Patch a city
// @Description Accepts a JSON Patch document, or a merge patch with Content-Type application/merge-patch+json.
// @Tags cities
// @Security Bearer
// @Param cityId path int true "city id"
// @Success 204
// @Router /cities/{cityId} [patch]
func (cc *CityController) PartiallyUpdateCity(c *gin.Context) {
	id, ok := parseID(c, "cityId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	city, err := cc.repo.GetCity(ctx, id, false)
	if err != nil {
		c.Error(err)
		return
	}

	var patched dto.CityForUpdate
	if !bindPatch(c, dto.ToCityForUpdate(*city), &patched) {
		return
	}

	patched.ApplyTo(city)
	if err := cc.repo.UpdateCity(ctx, city); err != nil {
		c.Error(err)
		return
	}

	cc.invalidate(c)
	response.NoContent(c)
}

// DeleteCity godoc
// @Summary Delete a city and its hotels
// @Tags cities
// @Security Bearer
// @Param cityId path int true "city id"
// @Success 204
// @Router /cities/{cityId} [delete]
func (cc *CityController) DeleteCity(c *gin.Context) {
	id, ok := parseID(c, "cityId")
	if !ok {
		return
	}

	if err := cc.repo.DeleteCity(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	cc.invalidate(c)
	response.NoContent(c)
}

// GetHotelsForCity godoc
// @Summary List a city's hotels
// @Tags cities
// @Param cityId path int true "city id"
// @Success 200 {array} dto.HotelWithoutRooms
// @Router /cities/{cityId}/hotels [get]
func (cc *CityController) GetHotelsForCity(c *gin.Context) {
	id, ok := parseID(c, "cityId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if !requireExists(c, cc.repo.CityExists, id) {
		return
	}

	hotels, err := cc.repo.ListHotelsForCity(ctx, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.ToHotelWithoutRoomsList(hotels))
}

// CreateHotelForCity godoc
// @Summary Create a hotel in a city
// @Tags cities
// @Security Bearer
// @Param cityId path int true "city id"
// @Param hotel body dto.HotelForCreation true "hotel"
// @Success 201 {object} dto.HotelDto
// @Failure 404 {object} response.Response
// @Router /cities/{cityId}/hotels [post]
func (cc *CityController) CreateHotelForCity(c *gin.Context) {
	id, ok := parseID(c, "cityId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if !requireExists(c, cc.repo.CityExists, id) {
		return
	}

	var input dto.HotelForCreation
	if !bindJSON(c, &input) {
		return
	}

	hotel := input.ToModel()
	if err := cc.repo.AddHotelForCity(ctx, id, &hotel); err != nil {
		c.Error(err)
		return
	}

	cc.invalidate(c)
	response.Created(c, location("/hotels/%d", hotel.ID), dto.ToHotelDto(hotel))
}

// DeleteHotelForCity godoc
// @Summary Delete a hotel of a city
// @Tags cities
// @Security Bearer
// @Param cityId path int true "city id"
// @Param hotelId path int true "hotel id"
// @Success 204
// @Router /cities/{cityId}/hotels/{hotelId} [delete]
func (cc *CityController) DeleteHotelForCity(c *gin.Context) {
	cityID, ok := parseID(c, "cityId")
	if !ok {
		return
	}
	hotelID, ok := parseID(c, "hotelId")
	if !ok {
		return
	}

	if err := cc.repo.DeleteHotelForCity(c.Request.Context(), cityID, hotelID); err != nil {
		c.Error(err)
		return
	}

	cc.invalidate(c)
	response.NoContent(c)
}

func (cc *CityController) invalidate(c *gin.Context) {
	invalidate(c.Request.Context(), cc.cache, cc.log, constants.CacheKeyCities, constants.CacheKeyHotels)
}
