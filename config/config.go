package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DBDriverDynamoDB = "dynamodb"
	DBDriverSQLite   = "sqlite"
	DBDriverMemory   = "memory"

	MailDriverSES = "ses"
	MailDriverLog = "log"
)

type Config struct {
	Listen string

	DBDriver        string
	TableName       string
	DBPath          string
	DynamoLocal     bool
	DynamoEndpoint  string
	MemoryRetention time.Duration

	MailDriver    string
	SESEndpoint   string
	SenderEmail   string
	BusinessEmail string

	SlackBotToken string
	SlackChannel  string
}

// Load は環境変数から設定を読む。.env があればそれも読む
func Load() (*Config, error) {
	// .env は無くてもよい
	_ = godotenv.Load()

	retention, err := getEnvAsDuration("MEMORY_RETENTION", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Listen:          getEnv("LISTEN_SOCKET", ":3000"),
		DBDriver:        strings.ToLower(getEnv("DB_DRIVER", DBDriverDynamoDB)),
		TableName:       os.Getenv("TABLE_NAME"),
		DBPath:          getEnv("DB_PATH", "./db/inquiry_relay.db"),
		DynamoLocal:     os.Getenv("DYNAMO_LOCAL") != "",
		DynamoEndpoint:  getEnv("DYNAMO_ENDPOINT", "http://localhost:8000"),
		MemoryRetention: retention,
		MailDriver:      strings.ToLower(getEnv("MAIL_DRIVER", MailDriverSES)),
		SESEndpoint:     os.Getenv("SES_ENDPOINT"),
		SenderEmail:     os.Getenv("SENDER_EMAIL"),
		BusinessEmail:   os.Getenv("BUSINESS_EMAIL"),
		SlackBotToken:   os.Getenv("SLACK_BOT_TOKEN"),
		SlackChannel:    os.Getenv("SLACK_CHANNEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.SenderEmail == "" {
		return fmt.Errorf("SENDER_EMAIL must be set")
	}
	if c.BusinessEmail == "" {
		return fmt.Errorf("BUSINESS_EMAIL must be set")
	}

	switch c.DBDriver {
	case DBDriverDynamoDB:
		if c.TableName == "" {
			return fmt.Errorf("TABLE_NAME must be set when DB_DRIVER=%s", DBDriverDynamoDB)
		}
	case DBDriverSQLite, DBDriverMemory:
	default:
		return fmt.Errorf("unknown DB_DRIVER: %s", c.DBDriver)
	}

	switch c.MailDriver {
	case MailDriverSES, MailDriverLog:
	default:
		return fmt.Errorf("unknown MAIL_DRIVER: %s", c.MailDriver)
	}
	return nil
}

// Slack への通知はトークンとチャンネルが揃っているときだけ行う
func (c *Config) SlackEnabled() bool {
	return c.SlackBotToken != "" && c.SlackChannel != ""
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s (%s): %w", key, v, err)
	}
	return d, nil
}
