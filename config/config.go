package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Storage    StorageConfig    `yaml:"storage"`
	JWT        JWTConfig        `yaml:"jwt"`
	Admin      AdminConfig      `yaml:"admin"`
	Pagination PaginationConfig `yaml:"pagination"`
	Log        LogConfig        `yaml:"log"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type DatabaseConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database"`
	Charset      string `yaml:"charset"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

type RedisConfig struct {
	Host               string `yaml:"host"`
	Port               int    `yaml:"port"`
	Password           string `yaml:"password"`
	DB                 int    `yaml:"db"`
	PathLockTTLSeconds int    `yaml:"path_lock_ttl_seconds"`
}

type StorageConfig struct {
	Bucket           string `yaml:"bucket"`
	Region           string `yaml:"region"`
	AccessKey        string `yaml:"access_key"`
	SecretKey        string `yaml:"secret_key"`
	Endpoint         string `yaml:"endpoint"`
	ViewURLExpiry    int    `yaml:"view_url_expiry_seconds"`
	UploadURLExpiry  int    `yaml:"upload_url_expiry_seconds"`
	MaxEditedImageMB int    `yaml:"max_edited_image_mb"`
}

type JWTConfig struct {
	Secret      string `yaml:"secret"`
	ExpireHours int    `yaml:"expire_hours"`
}

type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type PaginationConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

var AppConfig *Config

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	AppConfig = &cfg
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5001
	}
	if cfg.Database.Charset == "" {
		cfg.Database.Charset = "utf8mb4"
	}
	if cfg.Redis.PathLockTTLSeconds == 0 {
		cfg.Redis.PathLockTTLSeconds = 60
	}
	if cfg.Storage.ViewURLExpiry == 0 {
		cfg.Storage.ViewURLExpiry = 1800
	}
	if cfg.Storage.UploadURLExpiry == 0 {
		cfg.Storage.UploadURLExpiry = 300
	}
	if cfg.Storage.MaxEditedImageMB == 0 {
		cfg.Storage.MaxEditedImageMB = 10
	}
	if cfg.JWT.ExpireHours == 0 {
		cfg.JWT.ExpireHours = 168
	}
	if cfg.Admin.Email == "" {
		cfg.Admin.Email = "admin@teamhub.com"
	}
	if cfg.Admin.Name == "" {
		cfg.Admin.Name = "Admin User"
	}
	if cfg.Pagination.DefaultPageSize == 0 {
		cfg.Pagination.DefaultPageSize = 50
	}
	if cfg.Pagination.MaxPageSize == 0 {
		cfg.Pagination.MaxPageSize = 100
	}
}
