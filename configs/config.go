package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	SERVER_PORT                     string
	WORKER_POOL                     string
	DB_URI                          string
	DB_NAME                         string
	DB_MAXPOOLSIZE                  uint64
	DB_MINPOOLSIZE                  uint64
	DB_MAXIDLETIME_INMINUTES        int
	JWT_SECRET                      string
	JWT_TTL_HOURS                   int
	KAFKA_SERVER                    string
	KAFKA_SECURITY_PROTOCOL         string
	KAFKA_SASL_MECHANISM            string
	KAFKA_SASL_USERNAME             string
	KAFKA_SASL_PASSWORD             string
	KAFKA_SESSION_TIMEOUT_MS        int
	KAFKA_CLIENT_ID                 string
	KAFKA_TOPIC                     string
	PROJECT_ID                      string
	PUBSUB_TOPIC                    string
	BUCKET_NAME                     string
	REPORT_FOLDER                   string
	REDIS_ADDR                      string
	REDIS_PASSWORD                  string
	REDIS_DB                        int
	REDIS_ENABLE_TLS                bool
	REDIS_CONNECT_TIMEOUT_SECONDS   int
	REDIS_CERT_CONTENT              string
	LOAN_STATUS_CACHE_TTL_MINUTES   int
	DEFAULT_TENURE_MONTHS           int
	ANNUAL_INTEREST_RATES           map[string]float64
	DEFAULT_ANNUAL_INTEREST_PERCENT float64
	STATIC_DIR                      string
	SERVICE_NAME                    string
	OTEL_URL                        string
	LOG_LEVEL                       string
)

type RedisConfig struct {
	Addr           string        `yaml:"addr"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	EnableTLS      bool          `yaml:"enable_tls"`
	ConnectTimeout time.Duration `yaml:"connect_timeout_seconds"`
	CertContent    string        `yaml:"cert_content"`
}

// PubSubConfig represents the Pub/Sub configuration
type PubSubConfig struct {
	ProjectID string `yaml:"project_id"`
	Topic     string `yaml:"topic"`
}

// LoadEnv loads the environment variables from a .env file
func LoadEnv() error {
	err := godotenv.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	LoadEnvValues()

	return nil
}

func LoadEnvValues() {
	SERVER_PORT = GetEnv("SERVER_PORT", "8080")
	WORKER_POOL = GetEnv("WORKER_POOL", "5")
	DB_URI = GetEnv("DB_URI", "mongodb://localhost:27017")
	DB_NAME = GetEnv("DB_NAME", "GLoanApp")
	DB_MAXPOOLSIZE_Str := GetEnv("DB_MAXPOOLSIZE", "100")
	DB_MINPOOLSIZE_Str := GetEnv("DB_MINPOOLSIZE", "10")
	DB_MAXIDLETIME_INMINUTES_Str := GetEnv("DB_MAXIDLETIME_INMINUTES", "5")
	DB_MAXPOOLSIZE, _ = strconv.ParseUint(DB_MAXPOOLSIZE_Str, 10, 64)
	DB_MINPOOLSIZE, _ = strconv.ParseUint(DB_MINPOOLSIZE_Str, 10, 64)
	DB_MAXIDLETIME_INMINUTES, _ = strconv.Atoi(DB_MAXIDLETIME_INMINUTES_Str)

	JWT_SECRET = GetEnv("JWT_SECRET", "")
	JWT_TTL_HOURS, _ = strconv.Atoi(GetEnv("JWT_TTL_HOURS", "24"))

	KAFKA_SERVER = GetEnv("KAFKA_SERVER", "")
	KAFKA_SECURITY_PROTOCOL = GetEnv("KAFKA_SECURITY_PROTOCOL", "")
	KAFKA_SASL_MECHANISM = GetEnv("KAFKA_SASL_MECHANISM", "")
	KAFKA_SASL_USERNAME = GetEnv("KAFKA_SASL_USERNAME", "")
	KAFKA_SASL_PASSWORD = GetEnv("KAFKA_SASL_PASSWORD", "")
	KAFKA_SESSION_TIMEOUT_MS, _ = strconv.Atoi(GetEnv("KAFKA_SESSION_TIMEOUT_MS", "45000"))
	KAFKA_CLIENT_ID = GetEnv("KAFKA_CLIENT_ID", "gloan-api")
	KAFKA_TOPIC = GetEnv("KAFKA_TOPIC", "loan-application-events")

	PROJECT_ID = GetEnv("PROJECT_ID", "")
	PUBSUB_TOPIC = GetEnv("PUBSUB_TOPIC", "loan-decision-notifications")

	BUCKET_NAME = GetEnv("BUCKET_NAME", "")
	REPORT_FOLDER = GetEnv("REPORT_FOLDER", "applicationReports")

	REDIS_ADDR = GetEnv("REDIS_ADDR", "localhost:6379")
	REDIS_PASSWORD = GetEnv("REDIS_PASSWORD", "")
	REDIS_DB_Str := GetEnv("REDIS_DB", "0")
	REDIS_DB, _ = strconv.Atoi(REDIS_DB_Str)
	REDIS_ENABLE_TLS, _ = strconv.ParseBool(GetEnv("REDIS_ENABLE_TLS", "false"))
	REDIS_CONNECT_TIMEOUT_SECONDS_Str := GetEnv("REDIS_CONNECT_TIMEOUT_SECONDS", "5")
	REDIS_CONNECT_TIMEOUT_SECONDS, _ = strconv.Atoi(REDIS_CONNECT_TIMEOUT_SECONDS_Str)
	REDIS_CERT_CONTENT = GetEnv("REDIS_CERT_CONTENT", "")
	LOAN_STATUS_CACHE_TTL_MINUTES, _ = strconv.Atoi(GetEnv("LOAN_STATUS_CACHE_TTL_MINUTES", "10"))

	DEFAULT_TENURE_MONTHS, _ = strconv.Atoi(GetEnv("DEFAULT_TENURE_MONTHS", "12"))
	ANNUAL_INTEREST_RATES = parseRateTable(GetEnv("ANNUAL_INTEREST_RATES", "Personal:12.5,Home:8.5,Car:9.5,Education:10.5"))
	DEFAULT_ANNUAL_INTEREST_PERCENT, _ = strconv.ParseFloat(GetEnv("DEFAULT_ANNUAL_INTEREST_PERCENT", "12.5"), 64)

	STATIC_DIR = GetEnv("STATIC_DIR", "./web")

	SERVICE_NAME = GetEnv("SERVICE_NAME", "gloanapp")
	OTEL_URL = GetEnv("OTEL_URL", "")
	LOG_LEVEL = GetEnv("LOG_LEVEL", "INFO")
}

// GetRedisConfig returns a RedisConfig struct populated from environment variables
func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:           REDIS_ADDR,
		Password:       REDIS_PASSWORD,
		DB:             REDIS_DB,
		EnableTLS:      REDIS_ENABLE_TLS,
		ConnectTimeout: time.Duration(REDIS_CONNECT_TIMEOUT_SECONDS) * time.Second,
		CertContent:    REDIS_CERT_CONTENT,
	}
}

// GetPubSubConfig returns a PubSubConfig struct populated from environment variables
func GetPubSubConfig() PubSubConfig {
	return PubSubConfig{
		ProjectID: PROJECT_ID,
		Topic:     PUBSUB_TOPIC,
	}
}

// AnnualInterestRate looks up the flat annual rate for a loan type.
func AnnualInterestRate(loanType string) float64 {
	if rate, ok := ANNUAL_INTEREST_RATES[strings.ToLower(strings.TrimSpace(loanType))]; ok {
		return rate
	}
	return DEFAULT_ANNUAL_INTEREST_PERCENT
}

func parseRateTable(raw string) map[string]float64 {
	rates := make(map[string]float64)
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			continue
		}
		rate, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			continue
		}
		rates[strings.ToLower(parts[0])] = rate
	}
	return rates
}

// GetEnv fetches the value of an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}
