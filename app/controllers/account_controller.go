package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/naruhodo/newsapp/app/models"
	"github.com/naruhodo/newsapp/app/repository"
	"github.com/naruhodo/newsapp/internal/pkg/apperror"
	"github.com/naruhodo/newsapp/internal/pkg/session"
	"github.com/naruhodo/newsapp/internal/pkg/usercontext"
)

type registerRequest struct {
	Name     string `json:"name" form:"name"`
	LastName string `json:"lastName" form:"lastName"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// HandleRegister creates a new account and returns its public fields. All
// rule violations, including a taken email, come back as one 422 field-error
// list.
func HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.FieldValidationError("", "malformed request body")
	}

	user := &models.User{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Password: req.Password,
	}
	// Length rules apply to the plaintext password, so validate before hashing.
	if verr := models.Validate(user); verr != nil {
		return verr
	}

	hashed, err := models.HashPassword(req.Password)
	if err != nil {
		return err
	}
	user.Password = hashed

	if err := repository.GetGlobalFactory().GetUserRepository().Create(user); err != nil {
		return err
	}

	return c.JSON(user.Public())
}

// HandleLogin checks the credentials, stores the identity in the session and
// returns the public fields. Both failure modes report as inline field errors.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.FieldValidationError("", "malformed request body")
	}

	user, err := repository.GetGlobalFactory().GetUserRepository().GetByEmail(req.Email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.FieldValidationError("email", "Email not found.")
		}
		return err
	}

	if !models.CheckPasswordHash(req.Password, user.Password) {
		return apperror.FieldValidationError("password", "Password don't match.")
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return err
	}
	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUserName, user.Name)
	sess.Set(usercontext.KeyLastName, user.LastName)
	sess.Set(usercontext.KeyUserEmail, user.Email)
	if err := sess.Save(); err != nil {
		return err
	}

	return c.JSON(user.Public())
}

// HandleLogout destroys the session. Logging out without one is fine.
func HandleLogout(c *fiber.Ctx) error {
	if err := session.Destroy(c); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"Status": "ok"})
}
