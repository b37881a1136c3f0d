package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env              string           `yaml:"env" env-default:"development"`
	DbConfig         DbConfig         `yaml:"db" env-required:"true"`
	HttpServerConfig HttpServerConfig `yaml:"http_server" env-required:"true"`
	CacheConfig      CacheConfig      `yaml:"cache" env-required:"true"`
	SMTPConfig       SMTPConfig       `yaml:"smtp" env-required:"true"`
	UploadConfig     UploadConfig     `yaml:"upload"`
}

type HttpServerConfig struct {
	Address        string        `yaml:"address" env-required:"true"`
	Timeout        time.Duration `yaml:"timeout" env-required:"true"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-required:"true"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

type DbConfig struct {
	Username string `yaml:"username"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	DbName   string `yaml:"dbname"`
	SSLMode  string `yaml:"ssl_mode"`
}

type CacheConfig struct {
	Address      string        `yaml:"address" env-required:"true"`
	Db           int           `yaml:"db"`
	DashboardTtl time.Duration `yaml:"dashboard_ttl" env-default:"1m"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
}

// UploadConfig describes where uploaded blobs live on disk. Documents go
// directly under Dir with generated names; note audio goes under Dir/AudioDir.
type UploadConfig struct {
	Dir              string `yaml:"dir" env-default:"uploads"`
	AudioDir         string `yaml:"audio_dir" env-default:"audio"`
	MaxFileSizeBytes int64  `yaml:"max_file_size_bytes" env-default:"20971520"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/dev.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("error reading config file: %s. Error: %v", configPath, err)
	}

	return &cfg
}
