package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv                 string `yaml:"app_env"`
	AppPort                string `yaml:"app_port"`
	AllowedOrigins         string `yaml:"allowed_origins"`
	DBDriver               string `yaml:"db_driver"`
	DBHost                 string `yaml:"db_host"`
	DBPort                 string `yaml:"db_port"`
	DBUser                 string `yaml:"db_user"`
	DBPassword             string `yaml:"db_password"`
	DBName                 string `yaml:"db_name"`
	DBMaxIdleConns         int    `yaml:"db_max_idle_conns"`
	DBMaxOpenConns         int    `yaml:"db_max_open_conns"`
	SQLitePath             string `yaml:"sqlite_path"`
	MongoURI               string `yaml:"mongo_uri"`
	MongoDatabase          string `yaml:"mongo_database"`
	MongoCollection        string `yaml:"mongo_collection"`
	MongoTimeoutSeconds    int    `yaml:"mongo_timeout_seconds"`
	NATSURL                string `yaml:"nats_url"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
}

// Supported values for DB_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

func defaults() Config {
	return Config{
		AppEnv:                 "development",
		AppPort:                "8080",
		AllowedOrigins:         "http://localhost:5173",
		DBDriver:               DriverMongo,
		DBHost:                 "localhost",
		DBPort:                 "5432",
		DBUser:                 "notes",
		DBPassword:             "notes",
		DBName:                 "notes",
		DBMaxIdleConns:         10,
		DBMaxOpenConns:         100,
		SQLitePath:             "notes.db",
		MongoURI:               "mongodb://localhost:27017",
		MongoDatabase:          "notes-app",
		MongoCollection:        "notes",
		MongoTimeoutSeconds:    10,
		NATSURL:                "",
		ShutdownTimeoutSeconds: 5,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("%s not set, defaulting to %s", key, defaultValue)
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Invalid integer value for %s, defaulting to %d", key, defaultValue)
	}
	return defaultValue
}

// LoadFile reads a YAML config file on top of the built-in defaults.
// Keys missing from the file keep their default value.
func LoadFile(path string) (Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Load builds the configuration from defaults, the optional file named by
// CONFIG_FILE, and finally environment variables.
func Load() Config {
	log.Println("Loading configuration...")

	base := defaults()
	if path, ok := os.LookupEnv("CONFIG_FILE"); ok && path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			log.Printf("Ignoring config file: %v", err)
		} else {
			base = fileCfg
		}
	}

	return Config{
		AppEnv:                 getEnv("APP_ENV", base.AppEnv),
		AppPort:                getEnv("APP_PORT", base.AppPort),
		AllowedOrigins:         getEnv("ALLOWED_ORIGINS", base.AllowedOrigins),
		DBDriver:               getEnv("DB_DRIVER", base.DBDriver),
		DBHost:                 getEnv("DB_HOST", base.DBHost),
		DBPort:                 getEnv("DB_PORT", base.DBPort),
		DBUser:                 getEnv("DB_USER", base.DBUser),
		DBPassword:             getEnv("DB_PASSWORD", base.DBPassword),
		DBName:                 getEnv("DB_NAME", base.DBName),
		DBMaxIdleConns:         getEnvAsInt("DB_MAX_IDLE_CONNS", base.DBMaxIdleConns),
		DBMaxOpenConns:         getEnvAsInt("DB_MAX_OPEN_CONNS", base.DBMaxOpenConns),
		SQLitePath:             getEnv("SQLITE_PATH", base.SQLitePath),
		MongoURI:               getEnv("MONGO_URI", base.MongoURI),
		MongoDatabase:          getEnv("MONGO_DATABASE", base.MongoDatabase),
		MongoCollection:        getEnv("MONGO_COLLECTION", base.MongoCollection),
		MongoTimeoutSeconds:    getEnvAsInt("MONGO_TIMEOUT_SECONDS", base.MongoTimeoutSeconds),
		NATSURL:                getEnv("NATS_URL", base.NATSURL),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", base.ShutdownTimeoutSeconds),
	}
}

// Origins splits AllowedOrigins into its trimmed, non-empty entries.
func (c Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
