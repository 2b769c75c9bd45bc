package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOTELINFO_DATABASE_HOST", "localhost")
	t.Setenv("HOTELINFO_DATABASE_USER", "hotelinfo")
	t.Setenv("HOTELINFO_DATABASE_NAME", "hotelinfo")
	t.Setenv("HOTELINFO_AUTH_SECRET_KEY", strings.Repeat("a", 32))
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Primary.Env)
	assert.Equal(t, "info", cfg.Primary.LogLevel)
	assert.Equal(t, "8083", cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 60, cfg.Auth.TokenExpiryMinutes)
	assert.Equal(t, "web", cfg.Cloudinary.Folder)
	assert.Empty(t, cfg.Redis.Address)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HOTELINFO_SERVER_PORT", "9000")
	t.Setenv("HOTELINFO_DATABASE_MAX_OPEN_CONNS", "7")
	t.Setenv("HOTELINFO_DATABASE_SSL_MODE", "require")
	t.Setenv("HOTELINFO_PRIMARY_SEED_SAMPLE_DATA", "true")
	t.Setenv("HOTELINFO_AUTH_ADMIN_USERNAME", "root")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 7, cfg.Database.MaxOpenConns)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.True(t, cfg.Primary.SeedSampleData)
	assert.Equal(t, "root", cfg.Auth.AdminUsername)
	assert.Contains(t, cfg.Database.DSN(), "sslmode=require")
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("short secret", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("HOTELINFO_AUTH_SECRET_KEY", "too-short")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("unknown env", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("HOTELINFO_PRIMARY_ENV", "staging")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestAllowedOrigins(t *testing.T) {
	s := ServerConfig{CORSAllowedOrigins: " https://a.example.com, ,https://b.example.com "}
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, s.AllowedOrigins())
	assert.Empty(t, ServerConfig{}.AllowedOrigins())
}

func TestConnectRedis(t *testing.T) {
	rdb, err := ConnectRedis(context.Background(), RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, rdb)

	mr := miniredis.RunT(t)
	rdb, err = ConnectRedis(context.Background(), RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	require.NotNil(t, rdb)
	_ = rdb.Close()
}

func TestConnectCloudinary_Optional(t *testing.T) {
	cld, err := ConnectCloudinary(CloudinaryConfig{})
	require.NoError(t, err)
	assert.Nil(t, cld)

	cld, err = ConnectCloudinary(CloudinaryConfig{CloudName: "demo", APIKey: "key", APISecret: "secret"})
	require.NoError(t, err)
	assert.True(t, cld.Config.URL.Secure)
}

func TestInitApp_CORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	preflight := func(router *gin.Engine, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}
	build := func(origins string) *gin.Engine {
		router, m, c := InitApp(&Config{Primary: Primary{Env: "test"}, Server: ServerConfig{CORSAllowedOrigins: origins}})
		t.Cleanup(func() {
			_ = m.Close()
			c.Stop()
		})
		router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
		return router
	}

	listed := build("https://app.example.com")
	w := preflight(listed, "https://app.example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, http.StatusForbidden, preflight(listed, "https://evil.example.com").Code)

	open := build("")
	w = preflight(open, "https://anywhere.example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}
