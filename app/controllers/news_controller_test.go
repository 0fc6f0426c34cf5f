package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 16)...)
var gifBytes = append([]byte("GIF89a"), make([]byte, 16)...)

// multipartNewsRequest builds a POST /api/news with form fields and an
// optional file part.
func multipartNewsRequest(t *testing.T, fields map[string]string, fileName string, fileBytes []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileBytes != nil {
		part, err := writer.CreateFormFile("photos", fileName)
		require.NoError(t, err)
		_, err = part.Write(fileBytes)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/news", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestNewsListPaginatesAndFilters(t *testing.T) {
	app := newTestApp(t, nil)
	user := seedUser(t, "ana@example.com")
	seedNews(t, user.ID, "Go generics explained")
	seedNews(t, user.ID, "Weather outlook")
	seedNews(t, user.ID, "Go modules deep dive")

	resp := doRequest(t, app, jsonRequest(http.MethodGet, "/api/news?limit=2", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page pageBody
	decodeBody(t, resp, &page)
	assert.Equal(t, 1, page.Current)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, 2, page.Next)
	assert.Equal(t, 2, itemCount(t, page.Items))

	resp = doRequest(t, app, jsonRequest(http.MethodGet, "/api/news?title=Go", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &page)
	assert.Equal(t, 2, page.TotalItems)

	// Listing items carry the owner but never the photo collection.
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(page.Items, &items))
	require.NotEmpty(t, items)
	assert.Contains(t, items[0], "users")
	assert.NotContains(t, items[0], "photos")
}

func TestNewsGetByIDIncrementsViews(t *testing.T) {
	app := newTestApp(t, nil)
	user := seedUser(t, "ana@example.com")
	news := seedNews(t, user.ID, "Counting views")
	target := fmt.Sprintf("/api/news/%d", news.ID)

	resp := doRequest(t, app, jsonRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, float64(1), body["views"])

	resp = doRequest(t, app, jsonRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Equal(t, float64(2), body["views"])
}

func TestNewsGetByIDUnknownReturnsFailedEnvelope(t *testing.T) {
	app := newTestApp(t, nil)

	resp := doRequest(t, app, jsonRequest(http.MethodGet, "/api/news/999", nil))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body failedBody
	decodeBody(t, resp, &body)
	assert.Equal(t, "FAILED", body.Status.Type)
	assert.Equal(t, "Post doesn't exist", body.Status.Message)
}

func TestNewsCreateRejectsShortTitle(t *testing.T) {
	app := newTestApp(t, nil)
	user := seedUser(t, "ana@example.com")

	resp := doRequest(t, app, jsonRequest(http.MethodPost, "/api/news", map[string]interface{}{
		"title":   "Hi",
		"content": "too short",
		"user_id": user.ID,
	}))
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body validationBody
	decodeBody(t, resp, &body)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "title", body.Errors[0].Field)
	assert.Equal(t, "The title is too short, 5 characters minimum.", body.Errors[0].Message)
}

func TestNewsCreateWithPhotoUpload(t *testing.T) {
	uploadRoot := t.TempDir()
	app := newTestApp(t, map[string]string{"UPLOAD_ROOT": uploadRoot})
	user := seedUser(t, "ana@example.com")

	req := multipartNewsRequest(t, map[string]string{
		"title":   "Article with a picture",
		"content": "worth a thousand words",
		"user_id": strconv.FormatUint(uint64(user.ID), 10),
	}, "pic.png", pngBytes)

	resp := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		ID     uint `json:"id"`
		Photos []struct {
			URL string `json:"url"`
		} `json:"photos"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Photos, 1)
	prefix := fmt.Sprintf("/imgs/%d/", user.ID)
	assert.True(t, strings.HasPrefix(body.Photos[0].URL, prefix))
	assert.True(t, strings.HasSuffix(body.Photos[0].URL, ".png"))

	// The file itself landed under the upload root.
	onDisk := filepath.Join(uploadRoot, filepath.FromSlash(strings.TrimPrefix(body.Photos[0].URL, "/")))
	_, err := os.Stat(onDisk)
	assert.NoError(t, err)
}

func TestNewsCreateRejectsUnsupportedImage(t *testing.T) {
	uploadRoot := t.TempDir()
	app := newTestApp(t, map[string]string{"UPLOAD_ROOT": uploadRoot})
	user := seedUser(t, "ana@example.com")

	req := multipartNewsRequest(t, map[string]string{
		"title":   "Article with a gif",
		"content": "not allowed",
		"user_id": strconv.FormatUint(uint64(user.ID), 10),
	}, "anim.gif", gifBytes)

	resp := doRequest(t, app, req)
	require.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)

	// No article row was written.
	list := doRequest(t, app, jsonRequest(http.MethodGet, "/api/news", nil))
	var page pageBody
	decodeBody(t, list, &page)
	assert.Equal(t, 0, page.TotalItems)
}

func TestNewsUpdateChangesFields(t *testing.T) {
	app := newTestApp(t, nil)
	user := seedUser(t, "ana@example.com")
	news := seedNews(t, user.ID, "Original title")

	resp := doRequest(t, app, jsonRequest(http.MethodPut, fmt.Sprintf("/api/news/%d", news.ID), map[string]string{
		"title": "Updated title",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Updated title", body["title"])
	assert.Equal(t, "some content", body["content"])
}

func TestNewsDeleteThenGetReturnsNotFound(t *testing.T) {
	app := newTestApp(t, nil)
	user := seedUser(t, "ana@example.com")
	news := seedNews(t, user.ID, "Soon deleted")
	target := fmt.Sprintf("/api/news/%d", news.ID)

	resp := doRequest(t, app, jsonRequest(http.MethodDelete, target, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]string
	decodeBody(t, resp, &status)
	assert.Equal(t, "ok", status["Status"])

	resp = doRequest(t, app, jsonRequest(http.MethodGet, target, nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNewsUpdateRequiresOwnerWhenEnforced(t *testing.T) {
	app := newTestApp(t, map[string]string{"OWNERSHIP_ENFORCED": "true"})
	user := seedUser(t, "ana@example.com")
	news := seedNews(t, user.ID, "Protected post")

	// Anonymous caller, ownership cannot match.
	resp := doRequest(t, app, jsonRequest(http.MethodPut, fmt.Sprintf("/api/news/%d", news.ID), map[string]string{
		"title": "Hijacked title",
	}))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body failedBody
	decodeBody(t, resp, &body)
	assert.Equal(t, "You're not the owner of the post", body.Status.Message)
}

func TestUnknownRouteReportsBusinessMessage(t *testing.T) {
	app := newTestApp(t, nil)

	resp := doRequest(t, app, jsonRequest(http.MethodGet, "/api/nothing-here", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "route was not found", body["message"])

	// A non-numeric id matches no real route either.
	resp = doRequest(t, app, jsonRequest(http.MethodGet, "/api/news/abc", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Equal(t, "route was not found", body["message"])
}
