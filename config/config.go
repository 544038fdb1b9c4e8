package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	JWT      JWT
	Storage  Storage
	Redis    Redis
	Admin    Admin
	LogLevel string
}

type Server struct {
	Port    string
	GinMode string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string `json:"-"`
	Name     string
	SSLMode  string
}

type JWT struct {
	Secret string `json:"-"`
	TTL    time.Duration
}

type Storage struct {
	Driver        string // "local" or "s3"
	UploadBase    string
	PublicBaseURL string
	AWSRegion     string
	AWSAccessKey  string `json:"-"`
	AWSSecretKey  string `json:"-"`
	S3Bucket      string
}

// Admin is the reviewer account created at startup when both fields are set.
type Admin struct {
	Email    string
	Password string `json:"-"`
}

type Redis struct {
	Addr       string
	Password   string `json:"-"`
	DB         int
	PreviewTTL time.Duration
}

// ClientConfig is the applicant CLI's view of the environment.
type ClientConfig struct {
	APIBaseURL  string
	SessionFile string
	Timeout     time.Duration
	LogLevel    string
}

func readEnvFile() {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}
}

func NewConfig() (*Config, error) {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("JWT_TTL", "24h")
	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("UPLOAD_BASE", "./uploads")
	viper.SetDefault("PREVIEW_CACHE_TTL", "5m")
	viper.SetDefault("LOG_LEVEL", "info")
	readEnvFile()

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.JWT.Secret = viper.GetString("JWT_SECRET")
	config.JWT.TTL = viper.GetDuration("JWT_TTL")

	config.Storage.Driver = viper.GetString("STORAGE_DRIVER")
	config.Storage.UploadBase = viper.GetString("UPLOAD_BASE")
	config.Storage.PublicBaseURL = viper.GetString("PUBLIC_BASE_URL")
	if config.Storage.PublicBaseURL == "" {
		config.Storage.PublicBaseURL = "http://localhost:" + config.Server.Port + "/uploads"
	}
	config.Storage.AWSRegion = viper.GetString("AWS_REGION")
	config.Storage.AWSAccessKey = viper.GetString("AWS_ACCESS_KEY_ID")
	config.Storage.AWSSecretKey = viper.GetString("AWS_SECRET_ACCESS_KEY")
	config.Storage.S3Bucket = viper.GetString("S3_BUCKET_NAME")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")
	config.Redis.PreviewTTL = viper.GetDuration("PREVIEW_CACHE_TTL")

	config.Admin.Email = viper.GetString("ADMIN_EMAIL")
	config.Admin.Password = viper.GetString("ADMIN_PASSWORD")

	config.LogLevel = viper.GetString("LOG_LEVEL")

	if config.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET is empty, tokens are signed with an empty key")
	}

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

// NewClientConfig reads the CLI settings. Flags may override them later.
func NewClientConfig() *ClientConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	viper.SetDefault("ADMISSION_API_URL", "http://localhost:8080/api/")
	viper.SetDefault("ADMISSION_SESSION_FILE", filepath.Join(home, ".admission", "session.yaml"))
	viper.SetDefault("ADMISSION_TIMEOUT", "0s")
	viper.SetDefault("LOG_LEVEL", "warn")
	readEnvFile()

	cfg := &ClientConfig{
		APIBaseURL:  viper.GetString("ADMISSION_API_URL"),
		SessionFile: viper.GetString("ADMISSION_SESSION_FILE"),
		Timeout:     viper.GetDuration("ADMISSION_TIMEOUT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
	}
	log.Debug().Interface("config", cfg).Msg("Client config loaded")
	return cfg
}
