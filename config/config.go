package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables; the first underscore after
// it separates the section from the key, e.g. HOTELINFO_DATABASE_SSL_MODE maps
// to database.ssl_mode.
const EnvPrefix = "HOTELINFO_"

type Config struct {
	Primary    Primary          `koanf:"primary" validate:"required"`
	Server     ServerConfig     `koanf:"server" validate:"required"`
	Database   DatabaseConfig   `koanf:"database" validate:"required"`
	Redis      RedisConfig      `koanf:"redis"`
	Cloudinary CloudinaryConfig `koanf:"cloudinary"`
	Auth       AuthConfig       `koanf:"auth" validate:"required"`
}

type Primary struct {
	Env            string `koanf:"env" validate:"required,oneof=dev qc prod test"`
	LogLevel       string `koanf:"log_level" validate:"omitempty,oneof=debug info error"`
	SeedSampleData bool   `koanf:"seed_sample_data"`
}

type ServerConfig struct {
	Port               string  `koanf:"port" validate:"required"`
	ReadTimeout        int     `koanf:"read_timeout" validate:"gte=1"`
	WriteTimeout       int     `koanf:"write_timeout" validate:"gte=1"`
	IdleTimeout        int     `koanf:"idle_timeout" validate:"gte=1"`
	CORSAllowedOrigins string  `koanf:"cors_allowed_origins"`
	LoginRateLimit     float64 `koanf:"login_rate_limit" validate:"gt=0"`
	LoginBurst         int     `koanf:"login_burst" validate:"gte=1"`
}

type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	TimeZone        string `koanf:"time_zone"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"gte=1"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"gte=0"`
}

// RedisConfig is optional; caching is disabled when Address is empty.
type RedisConfig struct {
	Address  string `koanf:"address"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// CloudinaryConfig is optional; photo uploads fail when CloudName is empty.
type CloudinaryConfig struct {
	CloudName string `koanf:"cloud_name"`
	APIKey    string `koanf:"api_key"`
	APISecret string `koanf:"api_secret"`
	Folder    string `koanf:"folder"`
}

type AuthConfig struct {
	SecretKey          string `koanf:"secret_key" validate:"required,min=32"`
	Issuer             string `koanf:"issuer"`
	Audience           string `koanf:"audience"`
	TokenExpiryMinutes int    `koanf:"token_expiry_minutes" validate:"gte=1"`
	AdminUsername      string `koanf:"admin_username"`
	AdminPassword      string `koanf:"admin_password"`
	UserUsername       string `koanf:"user_username"`
	UserPassword       string `koanf:"user_password"`
}

// Load reads .env (when present) and HOTELINFO_* variables, applies defaults
// and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func (c *Config) applyDefaults() {
	if c.Primary.Env == "" {
		c.Primary.Env = "dev"
	}
	if c.Primary.LogLevel == "" {
		c.Primary.LogLevel = "info"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8083"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.LoginRateLimit == 0 {
		c.Server.LoginRateLimit = 1
	}
	if c.Server.LoginBurst == 0 {
		c.Server.LoginBurst = 5
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.TimeZone == "" {
		c.Database.TimeZone = "UTC"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Cloudinary.Folder == "" {
		c.Cloudinary.Folder = "web"
	}
	if c.Auth.TokenExpiryMinutes == 0 {
		c.Auth.TokenExpiryMinutes = 60
	}
	if c.Auth.Issuer == "" {
		c.Auth.Issuer = "hotelinfo"
	}
	if c.Auth.Audience == "" {
		c.Auth.Audience = "hotelinfo-api"
	}
}

// AllowedOrigins splits the comma separated CORS origin list.
func (s ServerConfig) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(s.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
