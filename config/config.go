package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerPort string

	// AWS
	AWSRegion    string
	S3BucketName string
	SQSQueueURL  string

	// JWT
	JWTSecret string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort: getEnv("PORT", "8080"),

		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		S3BucketName: getEnv("S3_BUCKET_NAME", "creator-classes-media"),
		SQSQueueURL:  getEnv("SQS_QUEUE_URL", ""),

		JWTSecret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
