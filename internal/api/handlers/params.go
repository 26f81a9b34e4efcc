package handlers

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/internal/middleware"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// actorOf reads the caller resolved by the auth middleware.
func actorOf(c *fiber.Ctx) (domain.Actor, error) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return domain.Actor{}, domain.ErrTokenNotFound
	}
	return actor, nil
}

// pagination returns page capped at domain.MaxPage and limit as given; zero means
// "use the service default".
func pagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page"))
	if errors.Is(err, strconv.ErrRange) && page > 0 {
		page = domain.MaxPage
	} else if err != nil || page < 1 {
		page = 1
	}
	if page > domain.MaxPage {
		page = domain.MaxPage
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = 0
	}
	return page, limit
}
