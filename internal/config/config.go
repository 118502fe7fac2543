package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Uploads  UploadsConfig  `mapstructure:"uploads"`
	Log      LogConfig      `mapstructure:"log"`
	Locale   LocaleConfig   `mapstructure:"locale"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Mode    string `mapstructure:"mode"` // gin mode: debug, release, test
}

// Store backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
)

// StoreConfig selects where the collections live.
type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	DataDir string `mapstructure:"data_dir"` // file backend only
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	// PublicBaseURL is prepended to object keys to build the URL stored in
	// profiles and posts. Defaults to <endpoint>/<bucket>.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// Enabled reports whether direct uploads can be offered.
func (c S3Config) Enabled() bool {
	return c.BucketName != ""
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
	Issuer     string        `mapstructure:"issuer"`
}

// UploadsConfig is the local directory served under /uploads.
type UploadsConfig struct {
	Dir string `mapstructure:"dir"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

// LocaleConfig mirrors the frontend i18n setup.
type LocaleConfig struct {
	Default   string   `mapstructure:"default"`
	Fallback  string   `mapstructure:"fallback"`
	Supported []string `mapstructure:"supported"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, jwt.expiration -> JWT_EXPIRATION
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		// Defaults and env vars are enough to run locally.
		err = nil
	} else if err != nil {
		return
	}

	// Duration strings ("720h") decode straight into time.Duration.
	err = v.Unmarshal(&config)
	if err != nil {
		return
	}
	return config, nil
}

// Every key needs a default so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":3000")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("store.backend", BackendFile)
	v.SetDefault("store.data_dir", "./data")

	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "rehab")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "rehab:")

	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("s3.public_base_url", "")

	v.SetDefault("jwt.secret", "your-secret-key")
	v.SetDefault("jwt.expiration", "720h") // 30 days
	v.SetDefault("jwt.issuer", "rehab-api")

	v.SetDefault("uploads.dir", "./uploads")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("locale.default", "zh-CN")
	v.SetDefault("locale.fallback", "zh-CN")
	v.SetDefault("locale.supported", []string{"zh-CN", "en-US", "ja-JP", "ko-KR"})
}
