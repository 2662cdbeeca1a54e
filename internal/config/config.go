package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Storage   StorageConfig   `mapstructure:"storage"`
	Training  TrainingConfig  `mapstructure:"training"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
	Remote    RemoteConfig    `mapstructure:"remote"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
}

// StorageConfig locates the client-local stores.
type StorageConfig struct {
	SettingsFile string `mapstructure:"settings_file" validate:"required"`
	DatabaseFile string `mapstructure:"database_file" validate:"required"`
}

type TrainingConfig struct {
	Mobile   bool           `mapstructure:"mobile"`
	Feedback FeedbackConfig `mapstructure:"feedback"`
}

// FeedbackConfig holds how long each verdict is shown before the session moves on.
type FeedbackConfig struct {
	Correct         time.Duration `mapstructure:"correct" validate:"gt=0"`
	Incorrect       time.Duration `mapstructure:"incorrect" validate:"gt=0"`
	IncorrectMobile time.Duration `mapstructure:"incorrect_mobile" validate:"gt=0"`
	Invalid         time.Duration `mapstructure:"invalid" validate:"gt=0"`
}

type TemplatesConfig struct {
	DictionaryTemplate string `mapstructure:"dictionary_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	DictionaryDirectory string `mapstructure:"dictionary_directory"`
}

type RemoteConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"omitempty,url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"dive,origin"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := NewValidator("mapstructure")
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/artikel")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("storage.settings_file", filepath.Join("data", "settings.yml"))
	v.SetDefault("storage.database_file", filepath.Join("data", "artikel.db"))
	v.SetDefault("training.mobile", false)
	v.SetDefault("training.feedback.correct", 1500*time.Millisecond)
	v.SetDefault("training.feedback.incorrect", 1500*time.Millisecond)
	v.SetDefault("training.feedback.incorrect_mobile", 2*time.Second)
	v.SetDefault("training.feedback.invalid", 1500*time.Millisecond)
	// Template is optional - if not specified, the embedded template is used
	v.SetDefault("templates.dictionary_template", "")
	v.SetDefault("outputs.dictionary_directory", filepath.Join("outputs", "dictionaries"))
	v.SetDefault("remote.timeout", 10*time.Second)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "artikel")
	v.SetDefault("database.username", "user")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("log.level", "info")

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("remote.base_url", "ARTIKEL_REMOTE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind ARTIKEL_REMOTE_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
