package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Klaviyo     Klaviyo     `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	MetricsSync MetricsSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Klaviyo struct {
	BaseURL          string        `mapstructure:"klaviyo_base_url"`
	Revision         string        `mapstructure:"klaviyo_revision"`
	RequestTimeout   time.Duration `mapstructure:"klaviyo_request_timeout"`
	RetryMaxAttempts int           `mapstructure:"klaviyo_retry_max_attempts"`
	RetryBaseDelay   time.Duration `mapstructure:"klaviyo_retry_base_delay"`
	RetryMaxDelay    time.Duration `mapstructure:"klaviyo_retry_max_delay"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type MetricsSync struct {
	CronSchedule      string `mapstructure:"metrics_sync_cron"`
	Enabled           bool   `mapstructure:"metrics_sync_enabled"`
	LookbackDays      int    `mapstructure:"metrics_sync_lookback_days"`
	FlowLookbackWeeks int    `mapstructure:"metrics_sync_flow_lookback_weeks"`
	RetentionDays     int    `mapstructure:"metrics_sync_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/metrics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("KLAVIYO_BASE_URL", "https://a.klaviyo.com/api")
	viper.SetDefault("KLAVIYO_REVISION", "2024-10-15")
	viper.SetDefault("KLAVIYO_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("KLAVIYO_RETRY_MAX_ATTEMPTS", 3)
	viper.SetDefault("KLAVIYO_RETRY_BASE_DELAY", "1s")
	viper.SetDefault("KLAVIYO_RETRY_MAX_DELAY", "30s")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL

	viper.SetDefault("METRICS_SYNC_CRON", "0 3 * * *")
	viper.SetDefault("METRICS_SYNC_ENABLED", false)
	viper.SetDefault("METRICS_SYNC_LOOKBACK_DAYS", 30)
	viper.SetDefault("METRICS_SYNC_FLOW_LOOKBACK_WEEKS", 12)
	viper.SetDefault("METRICS_SYNC_RETENTION_DAYS", 0) // 0 keeps everything

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using environment variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("loaded .env from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
