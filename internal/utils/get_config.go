package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
	"strconv"
)

type Config struct {
	// Application
	AppPort     string `yaml:"APP_PORT"`
	AppTimezone string `yaml:"APP_TIMEZONE"`
	LogFile     string `yaml:"LOG_FILE"`
	RateLimit   int    `yaml:"RATE_LIMIT_MAX"`

	// Database configuration
	DBUser         string `yaml:"DB_USER"`
	DBName         string `yaml:"DB_NAME"`
	DBPassword     string `yaml:"DB_PASSWORD"`
	DBPort         string `yaml:"DB_PORT"`
	DBHost         string `yaml:"DB_HOST"`
	DBSSLMode      string `yaml:"DB_SSLMODE"`
	DBMaxOpenConns int    `yaml:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int    `yaml:"DB_MAX_IDLE_CONNS"`

	// JWT
	JWTSecret   string `yaml:"JWT_SECRET"`
	JWTTTLHours int    `yaml:"JWT_TTL_HOURS"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
	ShopNotifyEmail  string `yaml:"SHOP_NOTIFY_EMAIL"`

	// AWS S3 configuration
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY"`
	AWSS3Endpoint string `yaml:"AWS_S3_ENDPOINT"`

	// Initial admin account
	AdminName     string `yaml:"ADMIN_NAME"`
	AdminPhone    string `yaml:"ADMIN_PHONE"`
	AdminPassword string `yaml:"ADMIN_PASSWORD"`
}

var config Config

var defaults = map[string]string{
	"APP_PORT":          "8000",
	"APP_TIMEZONE":      "Local",
	"LOG_FILE":          "./logs/app.log",
	"RATE_LIMIT_MAX":    "20",
	"DB_SSLMODE":        "disable",
	"DB_MAX_OPEN_CONNS": "25",
	"DB_MAX_IDLE_CONNS": "5",
	"JWT_TTL_HOURS":     "168",
	"ADMIN_NAME":        "Admin",
}

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func intString(i int) string {
	if i == 0 {
		return ""
	}
	return strconv.Itoa(i)
}

func fileValue(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_TIMEZONE":
		return config.AppTimezone
	case "LOG_FILE":
		return config.LogFile
	case "RATE_LIMIT_MAX":
		return intString(config.RateLimit)
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SSLMODE":
		return config.DBSSLMode
	case "DB_MAX_OPEN_CONNS":
		return intString(config.DBMaxOpenConns)
	case "DB_MAX_IDLE_CONNS":
		return intString(config.DBMaxIdleConns)
	case "JWT_SECRET":
		return config.JWTSecret
	case "JWT_TTL_HOURS":
		return intString(config.JWTTTLHours)
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "SHOP_NOTIFY_EMAIL":
		return config.ShopNotifyEmail
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "AWS_S3_ENDPOINT":
		return config.AWSS3Endpoint
	case "ADMIN_NAME":
		return config.AdminName
	case "ADMIN_PHONE":
		return config.AdminPhone
	case "ADMIN_PASSWORD":
		return config.AdminPassword
	default:
		return ""
	}
}

// GetConfig resolves key from the environment, then config.yaml, then the built-in default.
func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	if v := fileValue(key); v != "" {
		return v
	}
	return defaults[key]
}

func GetConfigInt(key string) int {
	v, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		fallback, _ := strconv.Atoi(defaults[key])
		return fallback
	}
	return v
}
