package handler

import (
	"time"

	"bioskop_tiket/database"
	"bioskop_tiket/model"
	"bioskop_tiket/utils"

	"github.com/gofiber/fiber/v2"
)

// GetMovies lists the movies currently on the schedule.
func GetMovies(c *fiber.Ctx) error {
	var movies []model.Movie
	if err := database.DB.Where("is_active = ?", true).Order("id ASC").Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching movies", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"data": movies})
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"message":   "Server is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
