package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Mail     MailConfig     `mapstructure:"mail"`
	Log      LogConfig      `mapstructure:"log"`
	Worker   WorkerConfig   `mapstructure:"worker"`
}

type AppConfig struct {
	Env         string `mapstructure:"env"`
	Port        int    `mapstructure:"port"`
	FrontendURL string `mapstructure:"frontend_url"`
}

func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
}

type KafkaConfig struct {
	Broker string `mapstructure:"broker"`
}

type AuthConfig struct {
	JWTSecret       string        `mapstructure:"jwt_secret"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
	// akun admin awal, dibuat saat boot kalau belum ada
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
}

type MailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"smtp_host"`
	Port     int    `mapstructure:"smtp_port"`
	Username string `mapstructure:"smtp_user"`
	Password string `mapstructure:"smtp_pass"`
	From     string `mapstructure:"smtp_from"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type WorkerConfig struct {
	DriveExpiryCron string        `mapstructure:"drive_expiry_cron"`
	OutboxInterval  time.Duration `mapstructure:"outbox_interval"`
}

// env var lama (tanpa prefix) tetap dipakai supaya .env yang sudah ada jalan terus
var envBindings = map[string]string{
	"app.env":                  "APP_ENV",
	"app.port":                 "PORT",
	"app.frontend_url":         "FRONTEND_URL",
	"db.host":                  "DB_HOST",
	"db.port":                  "DB_PORT",
	"db.user":                  "DB_USER",
	"db.password":              "DB_PASSWORD",
	"db.name":                  "DB_NAME",
	"db.sslmode":               "DB_SSLMODE",
	"redis.addr":               "REDIS_ADDR",
	"redis.password":           "REDIS_PASSWORD",
	"kafka.broker":             "KAFKA_BROKER",
	"auth.jwt_secret":          "JWT_SECRET",
	"auth.access_token_ttl":    "ACCESS_TOKEN_TTL",
	"auth.refresh_token_ttl":   "REFRESH_TOKEN_TTL",
	"auth.admin_email":         "ADMIN_EMAIL",
	"auth.admin_password":      "ADMIN_PASSWORD",
	"mail.enabled":             "EMAIL_ENABLED",
	"mail.smtp_host":           "SMTP_HOST",
	"mail.smtp_port":           "SMTP_PORT",
	"mail.smtp_user":           "SMTP_USER",
	"mail.smtp_pass":           "SMTP_PASS",
	"mail.smtp_from":           "SMTP_FROM",
	"log.level":                "LOG_LEVEL",
	"worker.drive_expiry_cron": "DRIVE_EXPIRY_CRON",
	"worker.outbox_interval":   "OUTBOX_INTERVAL",
}

// Load membaca .env (opsional), config file (opsional), lalu environment.
// Prioritas: env > file > default.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", 3000)
	v.SetDefault("app.frontend_url", "http://localhost:5173")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.name", "freshbit")
	v.SetDefault("db.sslmode", "disable")

	v.SetDefault("redis.addr", "localhost:6379")

	v.SetDefault("auth.access_token_ttl", "15m")
	v.SetDefault("auth.refresh_token_ttl", "168h")

	v.SetDefault("mail.enabled", false)
	v.SetDefault("mail.smtp_port", 587)
	v.SetDefault("mail.smtp_from", "FreshBit <no-reply@freshbit.app>")

	v.SetDefault("log.level", "info")

	v.SetDefault("worker.drive_expiry_cron", "0 */15 * * * *")
	v.SetDefault("worker.outbox_interval", "3s")
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("config: JWT_SECRET must be at least 16 characters")
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("config: PORT must be between 1 and 65535")
	}
	if c.Auth.AdminEmail != "" && len(c.Auth.AdminPassword) < 8 {
		return fmt.Errorf("config: ADMIN_PASSWORD must be at least 8 characters when ADMIN_EMAIL is set")
	}
	if c.Mail.Enabled && c.Mail.Host == "" {
		return fmt.Errorf("config: SMTP_HOST is required when EMAIL_ENABLED=true")
	}
	return nil
}
