package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Toxicity   ToxicityConfig   `mapstructure:"toxicity"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Database   DatabaseConfig   `mapstructure:"database"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ToxicityConfig fixes the combination weights and request defaults.
// Weights are read once at startup and passed down as values.
type ToxicityConfig struct {
	HarassmentWeight float64 `mapstructure:"harassment_weight"`
	MisogynyWeight   float64 `mapstructure:"misogyny_weight"`
	DefaultThreshold float64 `mapstructure:"default_threshold"`
	MaxBatchSize     int     `mapstructure:"max_batch_size"`
}

// ClassifierConfig selects the scoring backend. Provider is "remote"
// (served models) or "keyword" (deterministic fallback); Settings are
// provider-specific and decoded by the composition root.
type ClassifierConfig struct {
	Provider string                 `mapstructure:"provider"`
	Settings map[string]interface{} `mapstructure:"settings"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("could not load main config file: %w", err)
	}
	setDefaultValues()
	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil // environment variables only
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setDefaultValues() {
	if globalConfig.Server.Port == 0 {
		globalConfig.Server.Port = 8080
	}
	if globalConfig.Server.MetricsPort == 0 {
		globalConfig.Server.MetricsPort = 9090
	}
	if globalConfig.Toxicity.HarassmentWeight == 0 && globalConfig.Toxicity.MisogynyWeight == 0 {
		globalConfig.Toxicity.HarassmentWeight = 0.6
		globalConfig.Toxicity.MisogynyWeight = 0.4
	}
	if globalConfig.Toxicity.DefaultThreshold == 0 {
		globalConfig.Toxicity.DefaultThreshold = 0.5
	}
	if globalConfig.Toxicity.MaxBatchSize == 0 {
		globalConfig.Toxicity.MaxBatchSize = 100
	}
	if globalConfig.Classifier.Provider == "" {
		globalConfig.Classifier.Provider = "keyword"
	}
	if globalConfig.Database.SSLMode == "" {
		globalConfig.Database.SSLMode = "disable"
	}
}

func GetConfig() *Config {
	return &globalConfig
}
