package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/naruhodo/newsapp/app/models"
	"github.com/naruhodo/newsapp/internal/pkg/env"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

var DB *gorm.DB

func SetupDatabase() {
	var err error
	// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", ""),
	)

	cfg := &gorm.Config{}
	if env.GetEnvBool("DEBUG_QUERY", false) {
		cfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                      dsn,
			DefaultStringSize:        256,
			DisableDatetimePrecision: true, // not supported before MySQL 5.6
			DontSupportRenameIndex:   true,
			DontSupportRenameColumn:  true,
		}), cfg)
		if err == nil {
			Migrate(DB)
			return
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

// Migrate brings the schema up to date for the configured connection.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.News{},
		&models.Comment{},
		&models.Photo{},
	)
}

// GetDB returns the shared connection.
func GetDB() *gorm.DB {
	return DB
}

// SetDB swaps the shared connection; used by tests to point the app at an
// in-memory database.
func SetDB(db *gorm.DB) {
	DB = db
}
