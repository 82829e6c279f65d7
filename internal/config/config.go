package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For splitting list values
	"time"    // For cache durations

	"github.com/joho/godotenv" // For loading .env files
	"golang.org/x/crypto/bcrypt"
)

// Config holds the application configuration
type Config struct {
	AppPort     string        // Application port
	DBDriver    string        // Database driver: sqlite or mysql
	SQLitePath  string        // SQLite database file
	DBUser      string        // Database user
	DBPassword  string        // Database password
	DBHost      string        // Database host
	DBPort      string        // Database port
	DBName      string        // Database name
	AutoMigrate bool          // Run schema migration when the server starts
	SeedRoles   []string      // Roles created by the migrate command
	JWTSecret   string        // JWT secret key
	JWTTTL      time.Duration // Lifetime of issued tokens
	BcryptCost  int           // bcrypt cost factor
	RedisAddr   string        // Redis server address, empty disables caching
	RedisPass   string        // Redis password
	RedisDB     int           // Redis database number
	CacheTTL    time.Duration // Lifetime of cached list responses
	AMQPURL     string        // RabbitMQ URL, empty disables events
	LogLevel    string        // logrus level name
	IsProd      bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:     getenv("APP_PORT", "8080"),                           // Application port
		DBDriver:    strings.ToLower(getenv("DB_DRIVER", "sqlite")),       // Database driver
		SQLitePath:  getenv("SQLITE_PATH", "data.sqlite"),                 // SQLite file
		DBUser:      os.Getenv("DB_USER"),                                 // Database user
		DBPassword:  os.Getenv("DB_PASSWORD"),                             // Database password
		DBHost:      os.Getenv("DB_HOST"),                                 // Database host
		DBPort:      os.Getenv("DB_PORT"),                                 // Database port
		DBName:      os.Getenv("DB_NAME"),                                 // Database name
		AutoMigrate: getenv("AUTO_MIGRATE", "true") == "true",             // Migrate on start
		SeedRoles:   splitList(getenv("SEED_ROLES", "admin,user")),        // Seeded roles
		JWTSecret:   os.Getenv("JWT_SECRET"),                              // JWT secret key
		JWTTTL:      time.Duration(atoi("JWT_TTL_HOURS", 24)) * time.Hour, // Token lifetime
		BcryptCost:  atoi("BCRYPT_COST", bcrypt.DefaultCost),              // bcrypt cost
		RedisAddr:   os.Getenv("REDIS_ADDR"),                              // Redis server address
		RedisPass:   os.Getenv("REDIS_PASS"),                              // Redis password
		RedisDB:     redisDB,                                              // Redis database number
		CacheTTL:    duration("CACHE_TTL", 60*time.Second),                // Cache lifetime
		AMQPURL:     os.Getenv("AMQP_URL"),                                // RabbitMQ URL
		LogLevel:    getenv("LOG_LEVEL", "info"),                          // Log level
		IsProd:      os.Getenv("IS_PROD") == "true",                       // Is production environment
	}
}

// MySQLDSN builds the Data Source Name for the MySQL driver
func (c *Config) MySQLDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=true&loc=UTC"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func duration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
