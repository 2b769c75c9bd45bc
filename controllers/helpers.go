package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"hotelinfo/constants"
	"hotelinfo/dto"
	"hotelinfo/errors"
	"hotelinfo/repository"
	"hotelinfo/response"
	"hotelinfo/services"
	"hotelinfo/services/logger"
	"hotelinfo/utils"
	"hotelinfo/validator"

	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1"

// parseID reads a positive integer path parameter. It writes a 400 and
// returns false when the value is not one.
func parseID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, errors.ErrCodeInvalidID, fmt.Sprintf("%s must be a positive integer", param))
		return 0, false
	}
	return uint(id), true
}

// queryBool reads an optional boolean query parameter, default false.
func queryBool(c *gin.Context, name string) (bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		response.BadRequest(c, fmt.Sprintf("%s must be true or false", name))
		return false, false
	}
	return v, true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.AppError(c, validator.FromBindError(err))
		return false
	}
	return true
}

func bindListQuery(c *gin.Context) (repository.ListFilter, bool) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return repository.ListFilter{}, false
	}
	pageNumber, pageSize := repository.NormalizePage(q.PageNumber, q.PageSize)
	return repository.ListFilter{
		Name:        strings.TrimSpace(q.Name),
		SearchQuery: strings.TrimSpace(q.SearchQuery),
		PageNumber:  pageNumber,
		PageSize:    pageSize,
	}, true
}

// bindPatch applies the request body as a patch over current and decodes the
// result into dst. It writes the error response and returns false on failure.
func bindPatch(c *gin.Context, current, dst interface{}) bool {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "Unable to read request body")
		return false
	}
	if err := utils.ApplyPatch(current, body, c.ContentType(), dst); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.AppError(c, appErr)
			return false
		}
		c.Error(err)
		return false
	}
	return true
}

func currentUserID(c *gin.Context) uint {
	id, _ := c.Get(constants.ContextUserID)
	userID, _ := id.(uint)
	return userID
}

func isAdmin(c *gin.Context) bool {
	return c.GetString(constants.ContextUserRole) == constants.RoleAdmin
}

func location(format string, args ...interface{}) string {
	return apiPrefix + fmt.Sprintf(format, args...)
}

// cachedPage is how list responses are kept in the cache.
type cachedPage[T any] struct {
	Items []T                           `json:"items"`
	Meta  repository.PaginationMetaData `json:"meta"`
}

func listCacheKey(prefix string, f repository.ListFilter) string {
	return fmt.Sprintf("%slist:%s:%s:%d:%d", prefix, strings.ToLower(f.Name), strings.ToLower(f.SearchQuery), f.PageNumber, f.PageSize)
}

func readCachedPage[T any](ctx context.Context, cache services.Cache, log logger.Logger, key string) (*cachedPage[T], bool) {
	var page cachedPage[T]
	ok, err := cache.Get(ctx, key, &page)
	if err != nil {
		log.Error("read %s from cache: %v", key, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return &page, true
}

func writeCachedPage[T any](ctx context.Context, cache services.Cache, log logger.Logger, key string, items []T, meta repository.PaginationMetaData) {
	if err := cache.Set(ctx, key, cachedPage[T]{Items: items, Meta: meta}, constants.CacheTTL); err != nil {
		log.Error("write %s to cache: %v", key, err)
	}
}

func invalidate(ctx context.Context, cache services.Cache, log logger.Logger, prefixes ...string) {
	for _, p := range prefixes {
		if err := cache.DeletePrefix(ctx, p); err != nil {
			log.Error("invalidate %s: %v", p, err)
		}
	}
}

// existsFunc reports whether the row with the given id is present.
type existsFunc func(ctx context.Context, id uint) (bool, error)

// requireExists writes a 404 when the parent lookup found nothing.
func requireExists(c *gin.Context, check existsFunc, id uint) bool {
	exists, err := check(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return false
	}
	if !exists {
		response.NotFound(c)
		return false
	}
	return true
}
