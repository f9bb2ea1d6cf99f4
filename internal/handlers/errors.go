package handlers

import "github.com/gofiber/fiber/v2"

// DetailErrorHandler renders every error as the {"detail": ...} body
// clients parse for user-visible messages.
func DetailErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"detail": err.Error(),
	})
}
