package db

import (
	"fmt"  // Error wrapping
	"time" // Pool lifetimes

	"movie_reviews/internal/config" // Importing configuration
	"movie_reviews/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logrus backs the GORM logger
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/logger"        // GORM logger levels
	"gorm.io/gorm/schema"        // Naming strategy
)

// Supported values for the driver argument of Open
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Open connects to the database and registers the movie/genre join table.
// The returned handle is the only store handle of the process and is passed
// explicitly into every repository.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector // Driver-specific dialector
	switch driver {
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true}, // role, user, genre, movie, movie_genre, review
		TranslateError: true,                                       // Map driver errors to gorm.ErrDuplicatedKey and friends
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Log slow queries
			LogLevel:                  logger.Warn,            // Only slow queries and errors
			IgnoreRecordNotFoundError: true,                   // Lookups by natural key miss routinely
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	sqlDB, err := db.DB() // Underlying connection pool
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1) // SQLite allows a single writer
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, err
		}
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	// Preloading Movie.Genres and inserting join rows both go through MovieGenre
	if err := db.SetupJoinTable(&domain.Movie{}, "Genres", &domain.MovieGenre{}); err != nil {
		return nil, fmt.Errorf("setup join table: %w", err)
	}
	return db, nil
}

// Connect opens the database selected by cfg.DBDriver
func Connect(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBDriver == DriverMySQL {
		return Open(DriverMySQL, cfg.MySQLDSN()) // MySQL via DSN parts
	}
	return Open(DriverSQLite, cfg.SQLitePath) // SQLite file
}

// Close releases the connection pool behind db
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
