package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Document  DocumentConfig  `mapstructure:"document"`
	Placement PlacementConfig `mapstructure:"placement"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Port    int    `mapstructure:"port"`
	Env     string `mapstructure:"env"`
	BaseURL string `mapstructure:"base_url"`
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DocumentConfig struct {
	BasePath        string `mapstructure:"base_path"`        // Base path for documents
	IncomingFolder  string `mapstructure:"incoming_folder"`  // Folder with documents awaiting signatures
	StampedFolder   string `mapstructure:"stamped_folder"`   // Folder for stamped output
	SignatureFolder string `mapstructure:"signature_folder"` // Folder with signature images
	FileExtension   string `mapstructure:"file_extension"`   // Document extension (default: .pdf)
}

// PlacementConfig carries the service-wide placement defaults. The fixed
// stamp size is used when a request asks for the fixed strategy without
// supplying its own size, so signatures look the same physical size across
// differently-scaled source documents.
type PlacementConfig struct {
	FixedStampWidth  float64       `mapstructure:"fixed_stamp_width"`
	FixedStampHeight float64       `mapstructure:"fixed_stamp_height"`
	GeometryCacheTTL time.Duration `mapstructure:"geometry_cache_ttl"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func NewConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Document.FileExtension == "" {
		c.Document.FileExtension = ".pdf"
	}
	if c.Document.IncomingFolder == "" {
		c.Document.IncomingFolder = "incoming"
	}
	if c.Document.StampedFolder == "" {
		c.Document.StampedFolder = "stamped"
	}
	if c.Document.SignatureFolder == "" {
		c.Document.SignatureFolder = "signatures"
	}
	if c.Placement.FixedStampWidth <= 0 {
		c.Placement.FixedStampWidth = 150
	}
	if c.Placement.FixedStampHeight <= 0 {
		c.Placement.FixedStampHeight = 50
	}
	if c.Placement.GeometryCacheTTL <= 0 {
		c.Placement.GeometryCacheTTL = 10 * time.Minute
	}
	c.Placement.GeometryCacheTTL = normalizeTTL(c.Placement.GeometryCacheTTL)
}

// normalizeTTL interprets bare numbers in the yaml as seconds.
func normalizeTTL(d time.Duration) time.Duration {
	if d < time.Millisecond {
		return d * time.Second
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
