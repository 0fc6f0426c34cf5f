package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/naruhodo/newsapp/internal/pkg/apperror"
	"github.com/naruhodo/newsapp/internal/pkg/env"
	"github.com/naruhodo/newsapp/internal/pkg/pagination"
	"github.com/naruhodo/newsapp/internal/pkg/usercontext"
)

// paramID reads a numeric route parameter. A non-numeric value means the
// request matched no real route, which the API reports the same way as an
// unknown path.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, apperror.NewBusinessError("route was not found")
	}
	return uint(id), nil
}

// queryInt reads an integer query parameter with a default.
func queryInt(c *fiber.Ctx, name string, def int) int {
	val := c.Query(name)
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return n
}

// pageParams reads the page/limit pair of a list endpoint.
func pageParams(c *fiber.Ctx) (page, limit int) {
	return queryInt(c, "page", pagination.DefaultPage),
		queryInt(c, "limit", pagination.DefaultLimit)
}

// ownershipEnforced reports whether edit/delete operations require the caller
// to own the record. Off by default; flipped with OWNERSHIP_ENFORCED.
func ownershipEnforced() bool {
	return env.GetEnvBool("OWNERSHIP_ENFORCED", false)
}

// requireOwner rejects the operation when ownership is enforced and the
// session identity does not match the record's owner.
func requireOwner(c *fiber.Ctx, ownerID uint, message string) error {
	if !ownershipEnforced() {
		return nil
	}
	uc := usercontext.GetUserContext(c)
	if !uc.IsLoggedIn || uc.UserID != ownerID {
		return apperror.NewNotFoundError(message)
	}
	return nil
}
