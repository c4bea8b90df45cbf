package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App  AppConfig
	Data DataConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type DataConfig struct {
	CutoffsPath       string
	RelationshipsPath string
	FoodsPath         string
	GraphCacheTTLSecs int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Data: DataConfig{
			CutoffsPath:       getEnv("CUTOFFS_CSV_PATH", "data/micronutrient_cutoffs_structured.csv"),
			RelationshipsPath: getEnv("RELATIONSHIPS_CSV_PATH", "data/network_relationships.csv"),
			FoodsPath:         getEnv("FOODS_CSV_PATH", "data/foods_usda.csv"),
			GraphCacheTTLSecs: getEnvAsInt("GRAPH_CACHE_TTL_SECONDS", 300),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
