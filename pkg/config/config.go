package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// BackendURL is the base URL of the GMAO API; endpoint paths are
	// appended under <base>/api.
	BackendURL string `env:"BACKEND_URL"`
	Logger     Logger
	Session    Session
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Session struct {
	// DBPath locates the bolt file holding the persisted session pair.
	DBPath string `env:"SESSION_DB" envDefault:".gmao/session.db"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
