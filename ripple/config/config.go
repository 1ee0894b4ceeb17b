package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr   string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	JWTSecret  string
	JWTExpiry  time.Duration

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOPublicURL string
	MinIOUseSSL    bool
}

// fileConfig is the optional config.yaml overlay. Only non-empty values
// override what the environment provided.
type fileConfig struct {
	HTTPAddr       string `yaml:"http_addr"`
	DBUser         string `yaml:"db_user"`
	DBPassword     string `yaml:"db_password"`
	DBHost         string `yaml:"db_host"`
	DBPort         string `yaml:"db_port"`
	DBName         string `yaml:"db_name"`
	JWTSecret      string `yaml:"jwt_secret"`
	JWTExpiry      string `yaml:"jwt_expiry"`
	MinIOEndpoint  string `yaml:"minio_endpoint"`
	MinIOAccessKey string `yaml:"minio_access_key"`
	MinIOSecretKey string `yaml:"minio_secret_key"`
	MinIOBucket    string `yaml:"minio_bucket"`
	MinIOPublicURL string `yaml:"minio_public_url"`
}

func LoadConfig() Config {
	// .env is optional; system environment wins when both exist.
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8000"),
		DBUser:         getEnv("DB_USER", ""),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBHost:         getEnv("DB_HOST", ""),
		DBPort:         getEnv("DB_PORT", ""),
		DBName:         getEnv("DB_NAME", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTExpiry:      parseDuration(getEnv("JWT_EXPIRE_IN", "720h")),
		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinIOBucket:    getEnv("MINIO_BUCKET", "ripple-media"),
		MinIOPublicURL: getEnv("MINIO_PUBLIC_URL", ""),
		MinIOUseSSL:    getEnv("MINIO_USE_SSL", "") == "true",
	}
	applyFile(&cfg, getEnv("CONFIG_FILE", "config.yaml"))
	return cfg
}

func applyFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return
	}
	override(&cfg.HTTPAddr, fc.HTTPAddr)
	override(&cfg.DBUser, fc.DBUser)
	override(&cfg.DBPassword, fc.DBPassword)
	override(&cfg.DBHost, fc.DBHost)
	override(&cfg.DBPort, fc.DBPort)
	override(&cfg.DBName, fc.DBName)
	override(&cfg.JWTSecret, fc.JWTSecret)
	if fc.JWTExpiry != "" {
		cfg.JWTExpiry = parseDuration(fc.JWTExpiry)
	}
	override(&cfg.MinIOEndpoint, fc.MinIOEndpoint)
	override(&cfg.MinIOAccessKey, fc.MinIOAccessKey)
	override(&cfg.MinIOSecretKey, fc.MinIOSecretKey)
	override(&cfg.MinIOBucket, fc.MinIOBucket)
	override(&cfg.MinIOPublicURL, fc.MinIOPublicURL)
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func parseDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 720 * time.Hour // 30 days
	}
	return d
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
