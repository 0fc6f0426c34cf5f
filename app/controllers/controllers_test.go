package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/naruhodo/newsapp/app/models"
	"github.com/naruhodo/newsapp/app/repository"
	"github.com/naruhodo/newsapp/internal/pkg/apperror"
	"github.com/naruhodo/newsapp/internal/pkg/database"
	"github.com/naruhodo/newsapp/internal/pkg/env"
	"github.com/naruhodo/newsapp/internal/pkg/router"
	"github.com/naruhodo/newsapp/internal/pkg/session"
)

// newTestApp wires the full request path against an in-memory database: the
// real router, middlewares, error handler and repositories, with sessions kept
// in process memory.
func newTestApp(t *testing.T, envOverrides map[string]string) *fiber.App {
	t.Helper()

	prev := env.Env
	env.Env = map[string]string{}
	for key, value := range envOverrides {
		env.Env[key] = value
	}
	t.Cleanup(func() { env.Env = prev })

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	database.SetDB(db)
	database.Migrate(db)
	repository.ResetFactory()
	repository.InitializeFactory(db)
	session.NewMemorySessionStore()

	app := fiber.New(fiber.Config{
		ErrorHandler: apperror.ErrorHandler,
	})
	router.InstallRouter(app)
	return app
}

// seedUser inserts a user directly through the repository layer.
func seedUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "Ana",
		LastName: "Souza",
		Email:    email,
		Password: "plain-secret",
	}
	require.NoError(t, repository.GetGlobalFactory().GetUserRepository().Create(user))
	return user
}

// seedNews inserts a news article directly through the repository layer.
func seedNews(t *testing.T, userID uint, title string) *models.News {
	t.Helper()
	news := &models.News{
		Title:   title,
		Content: "some content",
		UserID:  userID,
	}
	require.NoError(t, repository.GetGlobalFactory().GetNewsRepository().Create(news))
	return news
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			panic(err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// validationBody is the 422 envelope.
type validationBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

// failedBody is the generic 404 envelope.
type failedBody struct {
	Status struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"status"`
}

// pageBody is the pagination descriptor with raw items.
type pageBody struct {
	First      int             `json:"first"`
	Before     int             `json:"before"`
	Current    int             `json:"current"`
	Last       int             `json:"last"`
	Next       int             `json:"next"`
	TotalPages int             `json:"total_pages"`
	TotalItems int             `json:"total_items"`
	Limit      int             `json:"limit"`
	Items      json.RawMessage `json:"items"`
}

func itemCount(t *testing.T, raw json.RawMessage) int {
	t.Helper()
	var items []json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &items))
	return len(items)
}
