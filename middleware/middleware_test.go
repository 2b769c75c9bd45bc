package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotelinfo/constants"
	"hotelinfo/errors"
	"hotelinfo/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTokens() *services.TokenService {
	return services.NewTokenService(strings.Repeat("m", 32), "hotelinfo", "clients", time.Hour)
}

func serve(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := newTokens()
	r := gin.New()
	r.GET("/any", AuthMiddleware(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, "%s:%v", c.GetString(constants.ContextUsername), c.MustGet(constants.ContextUserID))
	})
	r.GET("/admin", AuthMiddleware(tokens), RoleMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	user, err := tokens.GenerateToken(services.UserInfo{UserId: 3, Username: "guest", Role: constants.RoleUser})
	require.NoError(t, err)
	admin, err := tokens.GenerateToken(services.UserInfo{UserId: 1, Username: "admin", Role: constants.RoleAdmin})
	require.NoError(t, err)

	w := serve(r, "/any", "Bearer "+user)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "guest:3", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(r, "/any", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "/any", "Bearer nope").Code)
	assert.Equal(t, http.StatusForbidden, serve(r, "/admin", "Bearer "+user).Code)
	assert.Equal(t, http.StatusOK, serve(r, "/admin", "Bearer "+admin).Code)
}

func TestRoleMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/none", RoleMiddleware(constants.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/user", func(c *gin.Context) {
		c.Set(constants.ContextUserRole, constants.RoleUser)
	}, RoleMiddleware(constants.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, serve(r, "/none", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(r, "/user", "").Code)
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(zerolog.Nop()))
	r.GET("/missing", func(c *gin.Context) { c.Error(errors.ErrNotFound) })
	r.GET("/parent", func(c *gin.Context) { c.Error(fmt.Errorf("load: %w", errors.ErrParentNotFound)) })
	r.GET("/app", func(c *gin.Context) {
		c.Error(errors.NewAppError(errors.ErrCodeValidation, "bad input", nil))
	})
	r.GET("/dup", func(c *gin.Context) { c.Error(fmt.Errorf("insert booking: %w", errors.ErrDuplicate)) })
	r.GET("/conflict", func(c *gin.Context) {
		c.Error(errors.NewAppError(errors.ErrCodeInvalidOperation, "room taken", errors.ErrRoomUnavailable))
	})
	r.GET("/boom", func(c *gin.Context) { c.Error(fmt.Errorf("pq: connection refused on 10.0.0.5")) })
	r.GET("/written", func(c *gin.Context) {
		c.Status(http.StatusTeapot)
		c.Writer.WriteHeaderNow()
		c.Error(fmt.Errorf("ignored"))
	})

	assert.Equal(t, http.StatusNotFound, serve(r, "/missing", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, "/parent", "").Code)

	w := serve(r, "/app", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad input")

	w = serve(r, "/dup", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), string(errors.ErrCodeDBDuplicate))
	assert.Equal(t, http.StatusConflict, serve(r, "/conflict", "").Code)

	w = serve(r, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	assert.Equal(t, http.StatusTeapot, serve(r, "/written", "").Code)
}

func TestRequestID_ReusesHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	post := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":5000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, post("10.0.0.1"))
	assert.Equal(t, http.StatusOK, post("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.1"))
	assert.Equal(t, http.StatusOK, post("10.0.0.2"))
}

func TestLoggerAndMetrics(t *testing.T) {
	var buf strings.Builder
	r := gin.New()
	r.Use(RequestID(), Logger(zerolog.New(&buf)), Metrics())
	r.GET("/cities/:cityId", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, "/cities/4", "")
	out := buf.String()
	assert.Contains(t, out, `"route":"/cities/:cityId"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"message":"http_request"`)
}
