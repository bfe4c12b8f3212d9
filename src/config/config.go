package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Databases DatabasesConfig `mapstructure:"databases"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	AWS       AWSConfig       `mapstructure:"aws"`
	Auth      AuthConfig      `mapstructure:"auth"`
}

type ServiceConfig struct {
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"logLevel"`
}

type DatabasesConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
	// PasswordSecretID, when set, overrides Password with the value stored in
	// AWS Secrets Manager.
	PasswordSecretID string `mapstructure:"password_secret_id"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

type SchedulerConfig struct {
	// PaymentReminderCron is the cron spec for the overdue-payment sweep.
	PaymentReminderCron string `mapstructure:"paymentReminderCron"`
	// OperatorUser is the settings record whose webhook URL receives
	// payment reminders.
	OperatorUser string `mapstructure:"operatorUser"`
}

type AWSConfig struct {
	Region string `mapstructure:"region"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwtSecret"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	// .env values take effect before viper reads the yaml file
	_ = godotenv.Load()

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	return &cfg, nil
}
