package config

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"
)

type Config struct {
	DB *sql.DB

	Port   string
	AppURL string

	AdminUsername     string
	AdminPasswordHash string

	PaystackSecretKey    string
	FlutterwaveSecretKey string

	GeminiAPIKey string
	GeminiModel  string

	JWTSecret string
}

var AppConfig *Config

// Load reads application settings from the environment. Only the database
// URL is mandatory; everything else either has a development default or
// disables the feature that needs it (payment gateways, AI verification).
func Load() *Config {
	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		AppURL:               getEnv("APP_URL", "http://localhost:8080"),
		AdminUsername:        getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash:    os.Getenv("ADMIN_PASSWORD_HASH"),
		PaystackSecretKey:    os.Getenv("PAYSTACK_SECRET_KEY"),
		FlutterwaveSecretKey: os.Getenv("FLUTTERWAVE_SECRET_KEY"),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		JWTSecret:            getEnv("JWT_SECRET", "csc-payments-secret-key"),
	}
	AppConfig = cfg
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the PostgreSQL connection pool and verifies it with a ping.
func InitDB() {
	if AppConfig == nil {
		Load()
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		if os.Getenv("LOCAL_DB") == "true" {
			dsn = "host=localhost port=5432 user=postgres dbname=csc_payments sslmode=disable"
			log.Println("Using local PostgreSQL database")
		} else {
			log.Fatal("DATABASE_URL environment variable is required (or set LOCAL_DB=true)")
		}
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Fatal("Cannot establish database connection")
	}

	AppConfig.DB = db
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
