package config

import (
	"os"
)

type ServerConfig struct {
	Port     string
	Secret   string
	Env      string
	LogLevel string
}

type RedisConfig struct {
	Addr     string
	Password string
}

type AfricaTalkingConfig struct {
	Username string
	APIKey   string
	SMSURL   string
	SenderID string
}

type EmailConfig struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	SenderEmail        string
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:     getEnvOrDefault("PORTA", "3000"),
		Secret:   getEnvOrDefault("SECRET", "dmb"), // TODO: remove the insecure fallback once deployments ship a real secret
		Env:      getEnvOrDefault("APP_ENV", "development"),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

func LoadRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
}

func LoadAfricaTalkingConfig() AfricaTalkingConfig {
	return AfricaTalkingConfig{
		Username: os.Getenv("AT_USERNAME"),
		APIKey:   os.Getenv("AT_API_KEY"),
		SMSURL:   getEnvOrDefault("AT_SMS_URL", "https://api.sandbox.africastalking.com/version1/messaging"),
		SenderID: getEnvOrDefault("AT_SENDER_ID", "AFRICASTKNG"),
	}
}

func LoadEmailConfig() EmailConfig {
	return EmailConfig{
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          getEnvOrDefault("AWS_REGION", "us-east-1"),
		SenderEmail:        os.Getenv("AWS_SENDER_ADDRESS"),
	}
}

// Enabled reports whether SMS sending is configured for this deployment.
func (c AfricaTalkingConfig) Enabled() bool {
	return c.Username != "" && c.APIKey != ""
}

// Enabled reports whether e-mail sending is configured for this deployment.
func (c EmailConfig) Enabled() bool {
	return c.AWSAccessKeyID != "" && c.SenderEmail != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
