package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/naruhodo/newsapp/app/models"
)

// newTestDB opens a fresh in-memory database per test. The named shared-cache
// DSN keeps all pooled connections on the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.News{},
		&models.Comment{},
		&models.Photo{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := models.HashPassword("secret1")
	require.NoError(t, err)

	user := &models.User{Name: "Ana", LastName: "Lee", Email: email, Password: hash}
	require.NoError(t, NewUserRepository(db).Create(user))
	return user
}

func createTestNews(t *testing.T, db *gorm.DB, userID uint, title string) *models.News {
	t.Helper()

	news := &models.News{Title: title, Content: "some content", UserID: userID}
	require.NoError(t, NewNewsRepository(db).Create(news))
	return news
}
