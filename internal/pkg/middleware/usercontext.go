package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/naruhodo/newsapp/internal/pkg/session"
	"github.com/naruhodo/newsapp/internal/pkg/usercontext"
)

// UserContextMiddleware populates the request's user context from the session
// once per request. Handlers that need the caller's identity read it from
// locals instead of touching the session themselves.
func UserContextMiddleware(c *fiber.Ctx) error {
	anonymous := usercontext.UserContext{IsLoggedIn: false}

	store := session.GetSessionStore()
	if store == nil {
		c.Locals("USER_CONTEXT", anonymous)
		return c.Next()
	}

	sess, err := store.Get(c)
	if err != nil {
		c.Locals("USER_CONTEXT", anonymous)
		return c.Next()
	}

	userID, ok := sess.Get(usercontext.KeyUserID).(uint)
	if !ok || userID == 0 {
		c.Locals("USER_CONTEXT", anonymous)
		return c.Next()
	}

	name, _ := sess.Get(usercontext.KeyUserName).(string)
	lastName, _ := sess.Get(usercontext.KeyLastName).(string)
	email, _ := sess.Get(usercontext.KeyUserEmail).(string)

	c.Locals("USER_CONTEXT", usercontext.UserContext{
		UserID:     userID,
		Name:       name,
		LastName:   lastName,
		Email:      email,
		IsLoggedIn: true,
	})

	return c.Next()
}
