package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Redis     RedisConfig     `yaml:"redis"`
	Audit     AuditConfig     `yaml:"audit"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings. The defaults are permissive.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds identity provider and admin authorization settings.
type AuthConfig struct {
	FirebaseProjectID string `yaml:"firebase_project_id" env:"AUTH_FIREBASE_PROJECT_ID"`
	CertsURL          string `yaml:"certs_url"           env:"AUTH_CERTS_URL"           env-default:"https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"`
	AdminClaim        string `yaml:"admin_claim"         env:"AUTH_ADMIN_CLAIM"         env-default:"admin"`
	AdminUIDsRaw      string `yaml:"admin_uids"          env:"AUTH_ADMIN_UIDS"`

	// AdminUIDs is parsed from AdminUIDsRaw during validation.
	AdminUIDs []string `yaml:"-" env:"-"`
}

// CatalogConfig holds settings of the static card catalog origin.
type CatalogConfig struct {
	URL      string        `yaml:"url"       env:"CATALOG_URL"`
	Timeout  time.Duration `yaml:"timeout"   env:"CATALOG_TIMEOUT"   env-default:"10s"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"CATALOG_CACHE_TTL" env-default:"5m"`
}

// RedisConfig holds the catalog cache connection. An empty Addr disables it.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// AuditConfig holds settings of the asynchronous audit sink.
type AuditConfig struct {
	BufferSize int `yaml:"buffer_size" env:"AUDIT_BUFFER_SIZE" env-default:"100"`
}

// RateLimitConfig limits write endpoints per client IP.
type RateLimitConfig struct {
	WritesPerMinute int           `yaml:"writes_per_minute" env:"RATE_LIMIT_WRITES_PER_MINUTE" env-default:"30"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
	// TrustedProxies is the number of reverse proxies in front of the
	// server that append to X-Forwarded-For. Zero keys on the TCP peer.
	TrustedProxies int `yaml:"trusted_proxies" env:"RATE_LIMIT_TRUSTED_PROXIES" env-default:"0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Enabled reports whether a cache address is configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}
