// Package config supplies flag defaults from the environment and an
// optional .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"k8s.io/klog/v2"
)

type Config struct {
	Rows     int
	Columns  int
	Depth    int
	DB       string
	DBDriver string
	Redis    string
	Port     int
}

// Load reads the first of paths that exists (".env" if none are given)
// into the environment, then builds a Config from it. Variables already
// set in the environment win over the file.
func Load(paths ...string) *Config {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			klog.V(1).Infof("loaded environment from %s", p)
			break
		}
	}
	return FromEnv()
}

func FromEnv() *Config {
	return &Config{
		Rows:     GetEnvAsInt("CONNECT4_ROWS", 6),
		Columns:  GetEnvAsInt("CONNECT4_COLUMNS", 7),
		Depth:    GetEnvAsInt("CONNECT4_DEPTH", 4),
		DB:       GetEnv("CONNECT4_DB", ""),
		DBDriver: GetEnv("CONNECT4_DB_DRIVER", "sqlite3"),
		Redis:    GetEnv("CONNECT4_REDIS", ""),
		Port:     GetEnvAsInt("CONNECT4_PORT", 55431),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		klog.Warningf("invalid integer value for %s: %q, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
