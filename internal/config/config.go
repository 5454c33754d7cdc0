package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Storage    Storage `yaml:"storage"`
	Redis      Redis   `yaml:"redis"`
	Session    Session `yaml:"session"`
	Game       Game    `yaml:"game"`
}

type Storage struct {
	Driver     string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"redis"`
	SQLitePath string `yaml:"sqlite-path" env:"STORAGE_SQLITE_PATH" env-default:"clueless.db"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Session struct {
	IdleTimeout time.Duration `yaml:"idle-timeout" env:"SESSION_IDLE_TIMEOUT" env-default:"5m"`
	QueueSize   int           `yaml:"queue-size" env:"SESSION_QUEUE_SIZE" env-default:"64"`
}

type Game struct {
	// MinPlayers is used when a new game does not ask for its own minimum.
	MinPlayers int `yaml:"min-players" env:"GAME_MIN_PLAYERS" env-default:"3"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the file at path, then applies env overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	switch config.Storage.Driver {
	case StorageMemory, StorageRedis, StorageSQLite:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
