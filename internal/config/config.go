package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The JWT secret is deliberately required with no
// default: tokens signed with a well-known fallback secret are forgeable.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	MongoURI      string // MongoDB connection URI
	MongoDB       string // database name
	MongoUser     string // optional store username
	MongoPassword string // optional store password
	JWTSecret     string // secret used to sign access tokens (required)
	AccessTTLMin  int    // access token time-to-live in minutes
	BcryptCost    int    // bcrypt cost for fixture password hashing
	SeedOnStart   bool   // seed mock fixtures when the users collection is empty
	SeedForce     bool   // wipe all collections and regenerate fixtures on start
}

// Load reads configuration from the environment, consulting a .env file
// when one is present. Optional values fall back to development defaults;
// JWT_SECRET has no default and causes a fatal exit when missing.
func Load() Config {
	godotenv.Load()

	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("APP_PORT", "8080"),
		MongoURI:      getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:       getenv("MONGODB_DB", "reservations"),
		MongoUser:     os.Getenv("MONGODB_USER"),
		MongoPassword: os.Getenv("MONGODB_PASSWORD"),
		JWTSecret:     must("JWT_SECRET"),
		AccessTTLMin:  envInt("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:    envInt("BCRYPT_COST", 10),
		SeedOnStart:   envBool("SEED_ON_START", true),
		SeedForce:     envBool("SEED_FORCE_REGENERATE", false),
	}
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

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return def
}
