package utils

import (
	"os"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH"`

	// Server
	AppPort string `yaml:"APP_PORT"`
	LogFile string `yaml:"LOG_FILE"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Matching policy
	MatchingAllowUnproven  bool `yaml:"MATCHING_ALLOW_UNPROVEN"`
	MatchingRestrictToArea bool `yaml:"MATCHING_RESTRICT_AREA"`
}

var (
	config Config
	mu     sync.RWMutex
)

var defaults = map[string]string{
	"DB_DRIVER": "postgres",
	"DB_PATH":   "food_donation.db",
	"APP_PORT":  "8080",
	"LOG_FILE":  "./logs/app.log",
}

// LoadConfig reads .env (if any) and config.yaml. Environment variables win
// over yaml values of the same key.
func LoadConfig() {
	LoadConfigFile("config.yaml")
}

func LoadConfigFile(path string) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("error reading .env file: %v", err)
	}

	var loaded Config
	file, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("error reading YAML file: %s", err)
	} else if err := yaml.Unmarshal(file, &loaded); err != nil {
		log.Errorf("error parsing YAML file: %s", err)
	}

	mu.Lock()
	config = loaded
	mu.Unlock()
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func fromYAML(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	switch key {
	case "DB_DRIVER":
		return config.DBDriver
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
	case "DB_PATH":
		return config.DBPath
	case "APP_PORT":
		return config.AppPort
	case "LOG_FILE":
		return config.LogFile
	case "JWT_SECRET":
		return config.JWTSecret
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "MATCHING_ALLOW_UNPROVEN":
		return getBoolString(config.MatchingAllowUnproven)
	case "MATCHING_RESTRICT_AREA":
		return getBoolString(config.MatchingRestrictToArea)
	default:
		return ""
	}
}

func GetConfig(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if value := fromYAML(key); value != "" {
		return value
	}
	return defaults[key]
}

func GetConfigBool(key string) bool {
	b, err := strconv.ParseBool(GetConfig(key))
	return err == nil && b
}
