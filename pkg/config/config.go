package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type AppConfig struct {
	Port             string `mapstructure:"PORT"`
	Storage          string `mapstructure:"STORAGE"`
	PostgresUsername string `mapstructure:"POSTGRES_USERNAME"`
	PostgresPassword string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresDatabase string `mapstructure:"POSTGRES_DATABASE"`
	PostgresSSLMode  string `mapstructure:"POSTGRES_SSLMODE"`
	PostgresHost     string `mapstructure:"POSTGRES_HOST"`
	PostgresPort     string `mapstructure:"POSTGRES_PORT"`
	RabbitMQURL      string `mapstructure:"RABBITMQ_URL"`
	ServiceName      string `mapstructure:"SERVICE_NAME"`
	LogFormat        string `mapstructure:"LOG_FORMAT"`
	GatewayPort      string `mapstructure:"GATEWAY_PORT"`
	ServerURL        string `mapstructure:"SHAREIT_SERVER_URL"`
	GatewayRateLimit int    `mapstructure:"GATEWAY_RATE_LIMIT"`
}

// Read loads an optional .env file and lets the environment override it.
func Read() *AppConfig {
	appConfig, err := load(viper.New(), ".env")
	if err != nil {
		panic(fmt.Errorf("fatal error unmarshalling config: %w", err))
	}
	return appConfig
}

func load(v *viper.Viper, envFile string) (*AppConfig, error) {
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()

	bindEnvVariables(v)
	setDefaults(v)

	var appConfig AppConfig
	if err := v.Unmarshal(&appConfig); err != nil {
		return nil, err
	}

	if appConfig.Storage != StoragePostgres && appConfig.Storage != StorageMemory {
		return nil, fmt.Errorf("unknown STORAGE %q", appConfig.Storage)
	}

	return &appConfig, nil
}

func bindEnvVariables(v *viper.Viper) {
	_ = v.BindEnv("PORT")
	_ = v.BindEnv("STORAGE")
	_ = v.BindEnv("POSTGRES_USERNAME")
	_ = v.BindEnv("POSTGRES_PASSWORD")
	_ = v.BindEnv("POSTGRES_DATABASE")
	_ = v.BindEnv("POSTGRES_SSLMODE")
	_ = v.BindEnv("POSTGRES_HOST")
	_ = v.BindEnv("POSTGRES_PORT")
	_ = v.BindEnv("RABBITMQ_URL")
	_ = v.BindEnv("SERVICE_NAME")
	_ = v.BindEnv("LOG_FORMAT")
	_ = v.BindEnv("GATEWAY_PORT")
	_ = v.BindEnv("SHAREIT_SERVER_URL")
	_ = v.BindEnv("GATEWAY_RATE_LIMIT")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("STORAGE", StoragePostgres)
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("SERVICE_NAME", "shareit")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("GATEWAY_PORT", "9090")
	v.SetDefault("SHAREIT_SERVER_URL", "http://localhost:8080")
	v.SetDefault("GATEWAY_RATE_LIMIT", 0)
}
