package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultHeroInterval is how long each hero slide stays on screen
	DefaultHeroInterval = 5 * time.Second
	// DefaultTestimonialInterval is how long each testimonial stays on screen
	DefaultTestimonialInterval = 8 * time.Second
	// DefaultPageTTL is how long an idle page state is kept
	DefaultPageTTL = 30 * time.Minute
	// DefaultMaxPages caps the page states held in memory at once
	DefaultMaxPages = 2000
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	AppURL      string
	// Content
	ContentFile string // Optional YAML file replacing the embedded seed content
	MediaDir    string
	// Page state
	HeroInterval        time.Duration
	TestimonialInterval time.Duration
	PageTTL             time.Duration
	MaxPages            int
	// Other
	AllowedOrigins []string
	MetricsEnabled bool
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		DBPath:              getEnv("DB_PATH", "db/site.db"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		AppURL:              strings.TrimSuffix(getEnv("APP_URL", "http://localhost:8080"), "/"),
		ContentFile:         getEnv("CONTENT_FILE", ""),
		MediaDir:            getEnv("MEDIA_DIR", "static/images"),
		HeroInterval:        getEnvDuration("HERO_INTERVAL", DefaultHeroInterval),
		TestimonialInterval: getEnvDuration("TESTIMONIAL_INTERVAL", DefaultTestimonialInterval),
		PageTTL:             getEnvDuration("PAGE_TTL", DefaultPageTTL),
		MaxPages:            getEnvInt("MAX_PAGES", DefaultMaxPages),
		AllowedOrigins:      strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		MetricsEnabled:      getEnvBool("METRICS_ENABLED", true),
		R2AccountID:         getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:       getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:   getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:        getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:         getEnv("R2_PUBLIC_URL", ""),
	}
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// R2Configured reports whether every R2 credential is present
func (c *Config) R2Configured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// getEnvDuration parses values like "5s" or "30m". Zero, negative and
// malformed values fall back to the default.
// getEnvInt parses a positive integer, falling back to the default
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARNING] Invalid number for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
