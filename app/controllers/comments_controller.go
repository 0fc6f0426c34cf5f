package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/naruhodo/newsapp/app/models"
	"github.com/naruhodo/newsapp/app/repository"
	"github.com/naruhodo/newsapp/internal/pkg/apperror"
	"github.com/naruhodo/newsapp/internal/pkg/pagination"
	"github.com/naruhodo/newsapp/internal/pkg/queue"
)

type createCommentRequest struct {
	Content string `json:"content" form:"content"`
	NewsID  uint   `json:"news_id" form:"news_id"`
	UserID  uint   `json:"user_id" form:"user_id"`
}

type updateCommentRequest struct {
	Content string `json:"content" form:"content"`
}

// commentResponse is the wire shape of a comment, with the commenter's public
// fields inlined under "users".
type commentResponse struct {
	ID        uint              `json:"id"`
	Content   string            `json:"content"`
	NewsID    uint              `json:"news_id"`
	UserID    uint              `json:"user_id"`
	Users     models.PublicUser `json:"users"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func commentView(cm *models.Comment) commentResponse {
	return commentResponse{
		ID:        cm.ID,
		Content:   cm.Content,
		NewsID:    cm.NewsID,
		UserID:    cm.UserID,
		Users:     cm.User.Public(),
		CreatedAt: cm.CreatedAt,
		UpdatedAt: cm.UpdatedAt,
	}
}

// HandleCommentsForNews returns one page of live comments of a live article.
// A deleted or unknown article reports as nonexistent no matter how many
// comments it still carries.
func HandleCommentsForNews(c *fiber.Ctx) error {
	newsID, err := paramID(c, "newsId")
	if err != nil {
		return err
	}

	factory := repository.GetGlobalFactory()
	if _, err := factory.GetNewsRepository().GetByID(newsID); err != nil {
		return err
	}

	comments, err := factory.GetCommentRepository().FindByNewsID(newsID)
	if err != nil {
		return err
	}

	items := make([]commentResponse, 0, len(comments))
	for i := range comments {
		items = append(items, commentView(&comments[i]))
	}

	page, limit := pageParams(c)
	return c.JSON(pagination.Paginate(items, page, limit))
}

// HandleCommentGetByID returns one live comment of a live article.
func HandleCommentGetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	comment, err := repository.GetGlobalFactory().GetCommentRepository().GetByID(id)
	if err != nil {
		return err
	}

	return c.JSON(commentView(comment))
}

// HandleCommentCreate adds a comment to a live article.
func HandleCommentCreate(c *fiber.Ctx) error {
	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.FieldValidationError("", "malformed request body")
	}

	factory := repository.GetGlobalFactory()
	news, err := factory.GetNewsRepository().GetByID(req.NewsID)
	if err != nil {
		return err
	}

	comment := &models.Comment{
		Content: req.Content,
		NewsID:  news.ID,
		UserID:  req.UserID,
	}
	if err := factory.GetCommentRepository().Create(comment); err != nil {
		return err
	}

	queue.Publish(queue.EventCommentCreated, map[string]interface{}{
		"id":      comment.ID,
		"news_id": comment.NewsID,
		"user_id": comment.UserID,
	})

	return c.JSON(commentView(comment))
}

// HandleCommentUpdate changes the content of a live comment.
func HandleCommentUpdate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req updateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.FieldValidationError("", "malformed request body")
	}

	repo := repository.GetGlobalFactory().GetCommentRepository()
	comment, err := repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := requireOwner(c, comment.UserID, "You're not the owner of the comment"); err != nil {
		return err
	}

	comment.Content = req.Content
	if err := repo.Update(comment); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"Status": "ok"})
}

// HandleCommentDelete soft-deletes a live comment.
func HandleCommentDelete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	repo := repository.GetGlobalFactory().GetCommentRepository()
	comment, err := repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := requireOwner(c, comment.UserID, "You're not the owner of the comment"); err != nil {
		return err
	}

	if err := repo.SoftDelete(id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"Status": "ok"})
}
