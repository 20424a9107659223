package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type OpenAI struct {
	APIKey         string `mapstructure:"api_key" json:"-"`
	Model          string `mapstructure:"model" json:"model"`
	BaseURL        string `mapstructure:"base_url" json:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" json:"timeout_seconds"`
}

// Enabled reports whether real completion calls should be made.
func (o OpenAI) Enabled() bool {
	return strings.TrimSpace(o.APIKey) != ""
}

func (o OpenAI) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds) * time.Second
}

type Configuration struct {
	ApiPort string `mapstructure:"api_port" json:"api_port"`
	LogMode string `mapstructure:"log_mode" json:"log_mode"` // "dev" or "prod"

	Database          string `mapstructure:"database" json:"database"` // "sqlite3" or "postgres"
	DbHost            string `mapstructure:"db_host" json:"db_host"`
	DbPort            string `mapstructure:"db_port" json:"db_port"`
	DbUser            string `mapstructure:"db_user" json:"db_user"`
	DbName            string `mapstructure:"db_name" json:"db_name"`
	DbPass            string `mapstructure:"db_pass" json:"-"`
	DbSSLMode         string `mapstructure:"db_sslmode" json:"db_sslmode"`
	DbPath            string `mapstructure:"db_path" json:"db_path"`
	DbConnectAttempts int    `mapstructure:"db_connect_attempts" json:"db_connect_attempts"`

	OpenAI OpenAI `mapstructure:"openai" json:"openai"`

	AdminPhone  string   `mapstructure:"admin_phone" json:"-"`
	CorsOrigins []string `mapstructure:"cors_origins" json:"cors_origins"`
}

var defaults = map[string]any{
	"api_port":               "5000",
	"log_mode":               "dev",
	"database":               "sqlite3",
	"db_host":                "localhost",
	"db_port":                "5432",
	"db_user":                "postgres",
	"db_name":                "learning",
	"db_pass":                "",
	"db_sslmode":             "disable",
	"db_path":                "db/database.db",
	"db_connect_attempts":    5,
	"openai.api_key":         "",
	"openai.model":           "gpt-4o-mini",
	"openai.base_url":        "https://api.openai.com/v1",
	"openai.timeout_seconds": 30,
	"admin_phone":            "0504111781",
	"cors_origins":           []string{"*"},
}

var envKeys = map[string]string{
	"api_port":               "PORT",
	"log_mode":               "LOG_MODE",
	"database":               "DATABASE",
	"db_host":                "DB_HOST",
	"db_port":                "DB_PORT",
	"db_user":                "DB_USER",
	"db_name":                "DB_NAME",
	"db_pass":                "DB_PASS",
	"db_sslmode":             "DB_SSLMODE",
	"db_path":                "DB_PATH",
	"db_connect_attempts":    "DB_CONNECT_ATTEMPTS",
	"openai.api_key":         "OPENAI_API_KEY",
	"openai.model":           "OPENAI_MODEL",
	"openai.base_url":        "OPENAI_BASE_URL",
	"openai.timeout_seconds": "OPENAI_TIMEOUT_SECONDS",
	"admin_phone":            "ADMIN_PHONE",
	"cors_origins":           "CORS_ORIGINS",
}

// Get builds the process configuration once at startup. A .env file in the
// working directory is loaded first, then the optional config file at path
// (json or yaml), then environment variables, which take precedence.
func Get(path string) (Configuration, error) {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return Configuration{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Configuration{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return Configuration{}, fmt.Errorf("decode config: %w", err)
	}

	// defaults again for values explicitly blanked out
	if c.ApiPort == "" {
		c.ApiPort = "5000"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if c.OpenAI.TimeoutSeconds <= 0 {
		c.OpenAI.TimeoutSeconds = 30
	}
	if c.DbConnectAttempts <= 0 {
		c.DbConnectAttempts = 1
	}
	if c.AdminPhone == "" {
		c.AdminPhone = "0504111781"
	}
	c.OpenAI.APIKey = strings.TrimSpace(c.OpenAI.APIKey)
	c.OpenAI.BaseURL = strings.TrimRight(c.OpenAI.BaseURL, "/")

	return c, nil
}

func (c Configuration) IsPostgres() bool {
	return c.Database == "postgres" || c.Database == "postgresql"
}
