package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/praxisbooks/asset_depreciation_app/internal/utils/depreciation"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Depreciation rules. Passed explicitly into the engine; there is no
	// process-wide mutable settings object.
	CapitalizationThreshold decimal.Decimal
	MinimumTermYears        int
	ResidualFraction        decimal.Decimal
}

// DepreciationPolicy builds the engine policy from the loaded configuration.
func (c *Config) DepreciationPolicy() depreciation.Policy {
	return depreciation.Policy{
		CapitalizationThreshold: c.CapitalizationThreshold,
		MinimumTermYears:        c.MinimumTermYears,
		ResidualFraction:        c.ResidualFraction,
	}
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "asset-depreciation-app")
	viper.SetDefault("CAPITALIZATION_THRESHOLD", "450")
	viper.SetDefault("MINIMUM_TERM_YEARS", 5)
	viper.SetDefault("RESIDUAL_FRACTION", "0.10")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	threshold, err := decimal.NewFromString(viper.GetString("CAPITALIZATION_THRESHOLD"))
	if err != nil {
		threshold = decimal.NewFromInt(450)
		log.Printf("Warning: Invalid value for CAPITALIZATION_THRESHOLD. Defaulting to %s.\n", threshold)
	}
	cfg.CapitalizationThreshold = threshold

	cfg.MinimumTermYears = viper.GetInt("MINIMUM_TERM_YEARS")
	if cfg.MinimumTermYears < 1 {
		cfg.MinimumTermYears = 1
		log.Println("Warning: MINIMUM_TERM_YEARS below 1, using 1.")
	}

	fraction, err := decimal.NewFromString(viper.GetString("RESIDUAL_FRACTION"))
	if err != nil || fraction.IsNegative() || fraction.GreaterThan(decimal.NewFromInt(1)) {
		fraction = decimal.RequireFromString("0.10")
		log.Printf("Warning: Invalid value for RESIDUAL_FRACTION. Defaulting to %s.\n", fraction)
	}
	cfg.ResidualFraction = fraction

	return cfg, nil
}
