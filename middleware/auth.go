package middleware

import (
	"net/http"

	"hotelinfo/constants"
	"hotelinfo/errors"
	"hotelinfo/response"
	"hotelinfo/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthMiddleware verifies the bearer token and stores the caller in the context
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := tokens.ParseToken(authHeader)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(constants.ContextUserID, claims.UserInfo.UserId)
		c.Set(constants.ContextUsername, claims.UserInfo.Username)
		c.Set(constants.ContextUserRole, claims.UserInfo.Role)

		c.Next()
	}
}

// RoleMiddleware checks the role stored by AuthMiddleware
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextUserRole)
		if role == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if !hasRole(role, roles) {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func hasRole(role string, roles []string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// ErrorHandler renders errors attached with c.Error once the handler returns.
// Lookups that found nothing become 404, unique violations 409, AppErrors keep
// their code, anything else is logged and answered with a generic 500.
func ErrorHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		switch {
		case errors.Is(err, errors.ErrNotFound), errors.Is(err, errors.ErrParentNotFound):
			response.NotFound(c)
		case errors.Is(err, errors.ErrDuplicate):
			response.Error(c, http.StatusConflict, errors.ErrCodeDBDuplicate, "Resource already exists")
		case errors.IsAppError(err):
			appErr := errors.GetAppError(err)
			if response.StatusFor(appErr.Code) >= http.StatusInternalServerError {
				log.Error().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("request failed")
			}
			response.AppError(c, appErr)
		default:
			log.Error().Err(err).Str("request_id", c.GetString(RequestIDKey)).Str("path", c.FullPath()).Msg("unhandled error")
			response.ServerError(c)
		}
	}
}
