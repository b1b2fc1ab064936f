package bdphone

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries the engine settings an embedding service usually wants to
// tune without a rebuild.
type Config struct {
	DefaultLocale string        `env:"BDPHONE_DEFAULT_LOCALE" envDefault:"en"`
	AllowMobile   bool          `env:"BDPHONE_ALLOW_MOBILE" envDefault:"true"`
	AllowLandline bool          `env:"BDPHONE_ALLOW_LANDLINE" envDefault:"true"`
	AllowSpecial  bool          `env:"BDPHONE_ALLOW_SPECIAL" envDefault:"false"`
	DebounceDelay time.Duration `env:"BDPHONE_DEBOUNCE_DELAY" envDefault:"300ms"`
}

var dotenvOnce sync.Once

// LoadConfig reads Config from the environment, loading a .env file first if
// one exists.
func LoadConfig() (Config, error) {
	dotenvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoadConfig is like LoadConfig but panics on failure. Useful in service
// bootstrap code where a bad environment should stop the process.
func MustLoadConfig() Config {
	cfg, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("bdphone: loading config: %v", err))
	}
	return cfg
}

// NewFromConfig builds a Validator from cfg. Additional options are applied
// after the config-derived ones and may override them.
func NewFromConfig(cfg Config, opts ...Option) *Validator {
	base := []Option{
		WithDefaultLanguage(cfg.DefaultLocale),
		WithDefaultValidationOptions(ValidationOptions{
			AllowMobile:   cfg.AllowMobile,
			AllowLandline: cfg.AllowLandline,
			AllowSpecial:  cfg.AllowSpecial,
		}),
	}
	return New(append(base, opts...)...)
}
