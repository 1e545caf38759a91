package config // package config loads application configuration from environment variables

import (
	"log"     // log reports configuration errors and halts execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"strings" // strings normalizes driver names
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Storage is selected by driver name; the database
// fields are only read when the mysql driver is chosen, and the broker URL
// is only used when event publishing is enabled.
type Config struct {
	Env         string // application environment (e.g. "dev", "prod")
	Port        string // HTTP port to listen on
	StoreDriver string // storage backend: "file", "memory", "redis" or "mysql"
	StoreFile   string // path of the JSON document for the file driver
	DBUser      string // database username (mysql driver)
	DBPass      string // database password, optional (mysql driver)
	DBHost      string // database host address (mysql driver)
	DBPort      string // database port number (mysql driver)
	DBName      string // database name (mysql driver)
	Events      bool   // publish order/booking events to the broker
	AMQPURL     string // broker URL; empty means the library default
}

// Load reads configuration from environment variables. Everything defaults
// to a runnable local setup; only the mysql driver introduces hard
// requirements, enforced by must() when that driver is selected.
func Load() Config {
	cfg := Config{
		Env:         envStr("APP_ENV", "dev"),
		Port:        envStr("APP_PORT", "8080"),
		StoreDriver: strings.ToLower(envStr("STORE_DRIVER", "file")),
		StoreFile:   envStr("STORE_FILE", "data/store.json"),
		Events:      envBool("EVENTS_ENABLED", false),
		AMQPURL:     os.Getenv("RABBITMQ_URL"),
	}
	if cfg.AMQPURL == "" {
		cfg.AMQPURL = os.Getenv("AMQP_URL")
	}
	if cfg.StoreDriver == "mysql" {
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}
