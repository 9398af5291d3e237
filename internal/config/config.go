// Package config provides runtime configuration values for the showcase.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment variable name.
const Prefix = "VITRINE_"

// DefaultProductsURL is the product API used when nothing else is configured.
const DefaultProductsURL = "https://homework.mocart.io/api/products"

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Config holds the knobs for the viewer and the mock API.
type Config struct {
	ProductsURL  string        `env:"PRODUCTS_URL" envDefault:"https://homework.mocart.io/api/products" validate:"required,url"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	ItemSpacing  float32       `env:"ITEM_SPACING" envDefault:"2" validate:"gt=0"`
	ItemSize     float32       `env:"ITEM_SIZE" envDefault:"1" validate:"gt=0"`

	Width  int `env:"WIDTH" envDefault:"640" validate:"min=320,max=4096"`
	Height int `env:"HEIGHT" envDefault:"360" validate:"min=200,max=4096"`
	Scale  int `env:"SCALE" envDefault:"2" validate:"min=1,max=8"`

	// SavedMessage is how long the "changes saved" notice stays up.
	SavedMessage time.Duration `env:"SAVED_MESSAGE" envDefault:"1s" validate:"gt=0"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Seed     uint64 `env:"SEED"`

	MockAPIAddr string `env:"MOCKAPI_ADDR" envDefault:":8081"`
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return parse(env.Options{Prefix: Prefix})
}

// FromMap builds a Config from an explicit variable map instead of the process
// environment. Keys carry the Prefix.
func FromMap(vars map[string]string) (Config, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	return parse(env.Options{Prefix: Prefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges. Call it again after applying flag overrides.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrapf(ErrInvalid, "%v", err)
	}
	return nil
}
