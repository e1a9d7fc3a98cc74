package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP          string  // Host IP for the server
	RESTPort        int     // Port for the REST API
	GinMode         string  // Mode for the Gin framework (e.g., release, debug, test)
	DBHost          string  // Hostname or IP address for the database
	DBPort          int     // Port number for the database
	DBUser          string  // Username for the database
	DBPassword      string  // Password for the database
	DBName          string  // Name of the database
	RedisAddr       string  // host:port of the layout cache
	RedisPassword   string  // Password for the layout cache
	CacheTTLSeconds int     // Lifetime of cached layouts
	JWTSecret       string  // Secret key for JWT signing
	JWTIssuer       string  // Issuer claim for JWTs
	MazeCols        int     // Default number of columns
	MazeRows        int     // Default number of rows
	MaxDimension    int     // Largest accepted cols or rows
	Theme           string  // Default decoration theme
	Density         float64 // Default fraction of decorated cells
	Policy          string  // Default backtracking policy
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		DBHost:          getEnvWithDefault("DB_HOST", ""),
		DBPort:          getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:          getEnvWithDefault("DB_USER", ""),
		DBPassword:      getEnvWithDefault("DB_PASS", ""),
		DBName:          getEnvWithDefault("DB_NAME", "vinom_maze"),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnvWithDefault("REDIS_PASS", ""),
		CacheTTLSeconds: getEnvAsIntWithDefault("CACHE_TTL_SECONDS", 3600),
		JWTSecret:       getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:       getEnvWithDefault("JWT_ISSUER", "vinom-maze"),
		MazeCols:        getEnvAsIntWithDefault("MAZE_COLS", 20),
		MazeRows:        getEnvAsIntWithDefault("MAZE_ROWS", 20),
		MaxDimension:    getEnvAsIntWithDefault("MAZE_MAX_DIMENSION", 100),
		Theme:           getEnvWithDefault("MAZE_THEME", "treasure"),
		Density:         getEnvAsFloatWithDefault("MAZE_DENSITY", 0.15),
		Policy:          getEnvWithDefault("MAZE_POLICY", "skip"),
	}
}

// ValidateServer reports the settings the HTTP server cannot run without.
func (c Config) ValidateServer() error {
	required := []struct {
		key, value string
	}{
		{"DB_HOST", c.DBHost},
		{"DB_USER", c.DBUser},
		{"DB_PASS", c.DBPassword},
		{"JWT_SECRET", c.JWTSecret},
	}

	var errs []error
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("environment variable %s is not set", r.key))
		}
	}
	return errors.Join(errs...)
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, or logs a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsFloatWithDefault retrieves a float environment variable, or logs a fatal error if it cannot be parsed.
func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a number: %v", key, err)
	}
	return value
}
