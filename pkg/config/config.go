package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/avasyliev/booktrack/pkg/logger"
)

type Config struct {
	IsDebug bool      `yaml:"is_debug" env:"BOOKTRACK_DEBUG" env-default:"false"`
	API     APIConfig `yaml:"api"`
	Storage Storage   `yaml:"storage"`
}

type APIConfig struct {
	// BaseURL covers the domain resources (books, notes, stats, ...),
	// AuthURL the unauthenticated auth endpoints.
	BaseURL string `yaml:"base_url" env:"BOOKTRACK_API_URL" env-default:"http://localhost:8000/api"`
	AuthURL string `yaml:"auth_url" env:"BOOKTRACK_AUTH_URL" env-default:"http://localhost:8000/auth"`
}

type Storage struct {
	DataDir string `yaml:"data_dir" env:"BOOKTRACK_DATA_DIR"`
}

// DatabasePath resolves the location of the local duckdb file,
// defaulting to ~/.booktrack/booktrack.db.
func (s Storage) DatabasePath() string {
	dir := s.DataDir
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".booktrack")
	}
	return filepath.Join(dir, "booktrack.db")
}

var instance *Config
var once sync.Once

func GetConfig() *Config {
	once.Do(func() {
		instance = &Config{}
		err := cleanenv.ReadConfig("config.yml", instance)
		if os.IsNotExist(err) {
			err = cleanenv.ReadEnv(instance)
		}
		if err != nil {
			help, _ := cleanenv.GetDescription(instance, nil)
			logger.Log.Error(help)
			logger.Log.Fatal(err)
		}
	})
	return instance
}
