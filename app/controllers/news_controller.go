package controllers

import (
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/naruhodo/newsapp/app/models"
	"github.com/naruhodo/newsapp/app/repository"
	"github.com/naruhodo/newsapp/internal/pkg/apperror"
	"github.com/naruhodo/newsapp/internal/pkg/env"
	"github.com/naruhodo/newsapp/internal/pkg/pagination"
	"github.com/naruhodo/newsapp/internal/pkg/queue"
	"github.com/naruhodo/newsapp/internal/pkg/upload"
)

// newsSearchParams are the query parameters accepted as listing filters; they
// mirror the repository's search whitelist.
var newsSearchParams = []string{"title", "user_id", "views", "created_at", "updated_at"}

type createNewsRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
	UserID  uint   `json:"user_id" form:"user_id"`
}

type updateNewsRequest struct {
	Title   *string `json:"title" form:"title"`
	Content *string `json:"content" form:"content"`
}

// newsResponse is the wire shape of a news article, with the owner's public
// fields inlined under "users".
type newsResponse struct {
	ID        uint              `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	UserID    uint              `json:"user_id"`
	Users     models.PublicUser `json:"users"`
	Views     uint              `json:"views"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Photos    []models.Photo    `json:"photos,omitempty"`
}

func newsView(n *models.News, withPhotos bool) newsResponse {
	resp := newsResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		UserID:    n.UserID,
		Users:     n.User.Public(),
		Views:     n.Views,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
	if withPhotos {
		resp.Photos = n.Photos
	}
	return resp
}

// HandleNewsList returns one page of live news matching the whitelisted
// filters, ordered by the requested sort key.
func HandleNewsList(c *fiber.Ctx) error {
	filter := repository.NewsFilter{
		Search: map[string]string{},
		Sort:   c.Query("sort"),
	}
	for _, field := range newsSearchParams {
		if value := c.Query(field); value != "" {
			filter.Search[field] = value
		}
	}

	news, err := repository.GetGlobalFactory().GetNewsRepository().Find(filter)
	if err != nil {
		return err
	}

	items := make([]newsResponse, 0, len(news))
	for i := range news {
		items = append(items, newsView(&news[i], false))
	}

	page, limit := pageParams(c)
	return c.JSON(pagination.Paginate(items, page, limit))
}

// HandleNewsGetByID returns one live article with owner and photos. Every
// successful read bumps the view counter before the response goes out.
func HandleNewsGetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	repo := repository.GetGlobalFactory().GetNewsRepository()
	news, err := repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := repo.IncrementViews(news); err != nil {
		return err
	}

	return c.JSON(newsView(news, true))
}

// HandleNewsCreate validates the article, then processes any uploaded photos,
// then persists article and photo rows together. A rejected photo aborts the
// whole operation before anything reaches the database.
func HandleNewsCreate(c *fiber.Ctx) error {
	var req createNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.FieldValidationError("", "malformed request body")
	}

	news := &models.News{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	}
	if verr := models.Validate(news); verr != nil {
		return verr
	}

	files := uploadedFiles(c)
	for _, fh := range files {
		url, err := upload.SavePhoto(uploadRoot(), req.UserID, fh)
		if err != nil {
			return err
		}
		news.Photos = append(news.Photos, models.Photo{URL: url})
	}

	if err := repository.GetGlobalFactory().GetNewsRepository().Create(news); err != nil {
		return err
	}

	queue.Publish(queue.EventNewsCreated, map[string]interface{}{
		"id":      news.ID,
		"user_id": news.UserID,
		"title":   news.Title,
	})

	return c.JSON(newsView(news, true))
}

// HandleNewsUpdate changes title and/or content of a live article.
func HandleNewsUpdate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req updateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.FieldValidationError("", "malformed request body")
	}

	repo := repository.GetGlobalFactory().GetNewsRepository()
	news, err := repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := requireOwner(c, news.UserID, "You're not the owner of the post"); err != nil {
		return err
	}

	if req.Title != nil {
		news.Title = *req.Title
	}
	if req.Content != nil {
		news.Content = *req.Content
	}
	if err := repo.Update(news); err != nil {
		return err
	}

	return c.JSON(newsView(news, true))
}

// HandleNewsDelete soft-deletes a live article. Comments and photos stay in
// place; the parent-news rule hides the comments from reads.
func HandleNewsDelete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	repo := repository.GetGlobalFactory().GetNewsRepository()
	news, err := repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := requireOwner(c, news.UserID, "You're not the owner of the post"); err != nil {
		return err
	}

	if err := repo.SoftDelete(id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"Status": "ok"})
}

// uploadedFiles collects every file of a multipart request regardless of the
// field name it was sent under.
func uploadedFiles(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	var files []*multipart.FileHeader
	for _, headers := range form.File {
		files = append(files, headers...)
	}
	return files
}

func uploadRoot() string {
	return env.GetEnv("UPLOAD_ROOT", "./public")
}
