package checker

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the configuration for the card checker. Every field can be set
// through CARDCHECK_* environment variables; flags override on top.
type Config struct {
	// LogPath is the flat record log the check flow appends to.
	LogPath string `env:"CARDCHECK_LOG_PATH" env-default:"card_log.txt"`
	// ExpiryTZ is an IANA timezone name for expiry computations (e.g.
	// "Australia/Sydney"); empty means UTC.
	ExpiryTZ string `env:"CARDCHECK_EXPIRY_TZ" env-default:""`
	// WarnMonths is the ExpiringSoon look-ahead window.
	WarnMonths int `env:"CARDCHECK_WARN_MONTHS" env-default:"6"`
	// BINPrefix is the issuer prefix used by the generate subcommand.
	BINPrefix string `env:"CARDCHECK_BIN" env-default:"421234"`
	// CardProduct picks the validity years for generated cards.
	CardProduct string `env:"CARDCHECK_PRODUCT" env-default:"debit"`
	// ProductYears maps card product to validity years, e.g.
	// "credit:3,debit:5".
	ProductYears map[string]int `env:"CARDCHECK_PRODUCT_YEARS" env-separator:","`
}

func DefaultConfig() *Config {
	return &Config{
		LogPath:      "card_log.txt",
		WarnMonths:   6,
		BINPrefix:    "421234",
		CardProduct:  "debit",
		ProductYears: map[string]int{"credit": 3, "debit": 5},
	}
}

// LoadConfig reads the environment on top of defaults.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading config from env: %w", err)
	}
	return cfg, nil
}
