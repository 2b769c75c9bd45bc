package controllers

import (
	"strings"

	"hotelinfo/dto"
	"hotelinfo/response"
	"hotelinfo/services"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	search *services.SearchService
}

func NewSearchController(search *services.SearchService) *SearchController {
	return &SearchController{search: search}
}

// GetSearchResults godoc
// @Summary Fuzzy hotel search
// @Description Scores hotels by type keywords, star rating, city and amenities found in the query.
// @Tags search
// @Param query query string false "free text, e.g. luxury 5 star ramallah pool"
// @Param pageSize query int false "page size, max 20"
// @Param pageNumber query int false "page number"
// @Success 200 {array} dto.SearchResultDto
// @Router /search-results [get]
func (sc *SearchController) GetSearchResults(c *gin.Context) {
	var q dto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	results, meta, err := sc.search.Search(c.Request.Context(), strings.TrimSpace(q.Query), q.PageNumber, q.PageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithPagination(c, results, meta)
}

// GetSearchAmenities godoc
// @Summary Amenities offered as search filters
// @Tags search
// @Success 200 {array} dto.FilterAmenityDto
// @Router /search-results/amenities [get]
func (sc *SearchController) GetSearchAmenities(c *gin.Context) {
	amenities, err := sc.search.Amenities(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, amenities)
}
