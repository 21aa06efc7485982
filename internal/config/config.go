package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MrSnakeDoc/hookhub/internal/catalog"
	"github.com/MrSnakeDoc/hookhub/internal/logger"
)

// DefaultDocsURL is the documentation link shown in the page header.
const DefaultDocsURL = "https://docs.claude.com/en/docs/claude-code"

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	CatalogSource string // "builtin" | "file" | "redis"
	CatalogFile   string // path to the YAML catalog (required when CatalogSource=file)
	SeedOnEmpty   bool   // redis source: store the built-in catalog when redis holds none
	DocsURL       string // header documentation link

	// Redis (only used when CatalogSource=redis or by `hookhub seed`)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	// Access restrictions
	AllowedHosts []string // optional, restrict page and API to specific Host headers
	AllowedCIDRS []string // optional, restrict probe endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	// Rate limiting (disabled when RateLimitBurst is 0)
	RateLimitBurst  int
	RateLimitPerMin int
}

// Load reads the configuration from the environment.
// It panics on missing required variables, like a failed flag parse would.
func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("HOOKHUB_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("HOOKHUB_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("HOOKHUB_REQUEST_TIMEOUT", 2*time.Second),

		// Logging
		LogLevel:  getenv("HOOKHUB_LOG_LEVEL", "info"),
		PrettyLog: mustBool("HOOKHUB_PRETTY_LOG", true),

		// Catalog
		CatalogSource: strings.ToLower(getenv("HOOKHUB_CATALOG_SOURCE", catalog.SourceBuiltin)),
		CatalogFile:   getenv("HOOKHUB_CATALOG_FILE", ""),
		SeedOnEmpty:   mustBool("HOOKHUB_SEED_ON_EMPTY", true),
		DocsURL:       getenv("HOOKHUB_DOCS_URL", DefaultDocsURL),

		// Redis settings
		RedisAddr:           getenv("HOOKHUB_REDIS_ADDR", ""),
		RedisUser:           getenv("HOOKHUB_REDIS_USERNAME", ""),
		RedisPassword:       getenv("HOOKHUB_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("HOOKHUB_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("HOOKHUB_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("HOOKHUB_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("HOOKHUB_TRUST_PROXY", true),

		RateLimitBurst:  getenvInt("HOOKHUB_RATE_LIMIT_BURST", 0),
		RateLimitPerMin: getenvInt("HOOKHUB_RATE_LIMIT_PER_MIN", 60),
	}

	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("❌ FATAL: %v", err))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// Validate checks cross-field requirements, such as the variables a given
// catalog source depends on.
func (c *Config) Validate() error {
	if !logger.ParseLevel(c.LogLevel) {
		return fmt.Errorf("invalid HOOKHUB_LOG_LEVEL %q (want debug, info, warn or error)", c.LogLevel)
	}

	switch c.CatalogSource {
	case catalog.SourceBuiltin:
	case catalog.SourceFile:
		if c.CatalogFile == "" {
			return fmt.Errorf("HOOKHUB_CATALOG_FILE is required when HOOKHUB_CATALOG_SOURCE=file")
		}
	case catalog.SourceRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("HOOKHUB_REDIS_ADDR is required when HOOKHUB_CATALOG_SOURCE=redis")
		}
	default:
		return fmt.Errorf("unknown HOOKHUB_CATALOG_SOURCE %q (want builtin, file or redis)", c.CatalogSource)
	}

	if c.RateLimitBurst < 0 {
		return fmt.Errorf("HOOKHUB_RATE_LIMIT_BURST must be >= 0, got %d", c.RateLimitBurst)
	}

	return nil
}

// RequireRedis returns an error when no Redis address is configured.
// Used by commands that always talk to Redis.
func (c *Config) RequireRedis() error {
	if c.RedisAddr == "" {
		return fmt.Errorf("HOOKHUB_REDIS_ADDR is not set")
	}
	return nil
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
