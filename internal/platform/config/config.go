package config

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const devJWTSecret = "dev-only-insecure-secret-change-me"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	YouTubeAPIKey     string
	YouTubeRegion     string
}

// LoadConfig loads configuration from environment variables and a .env file if present.
// It fails when IS_PRODUCTION is set and no real JWT_SECRET was provided: the
// built-in dev secret must never sign production tokens.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_NAME", "tubeview")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "tubeview-backend")
	viper.SetDefault("YOUTUBE_API_KEY", "")
	viper.SetDefault("YOUTUBE_REGION", "US")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:          viper.GetString("PORT"),
		IsProduction:  viper.GetBool("IS_PRODUCTION"),
		JWTIssuer:     viper.GetString("JWT_ISSUER"),
		YouTubeAPIKey: viper.GetString("YOUTUBE_API_KEY"),
		YouTubeRegion: viper.GetString("YOUTUBE_REGION"),
	}

	cfg.DatabaseURL = viper.GetString("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
			url.QueryEscape(viper.GetString("DB_USER")),
			url.QueryEscape(viper.GetString("DB_PASSWORD")),
			viper.GetString("DB_HOST"),
			viper.GetString("DB_PORT"),
			viper.GetString("DB_NAME"),
		)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set when IS_PRODUCTION is true")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure dev key.")
		cfg.JWTSecret = devJWTSecret
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = 24 * time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
		}
	}
	cfg.JWTExpiryDuration = jwtExpiry

	if cfg.YouTubeAPIKey == "" {
		log.Println("Warning: YOUTUBE_API_KEY not set. Video catalog endpoints will return errors.")
	}

	return cfg, nil
}
