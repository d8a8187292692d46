package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/ewastedb/internal/models"
	"github.com/greenloop/ewastedb/internal/services"
	"github.com/greenloop/ewastedb/internal/types"
	"github.com/greenloop/ewastedb/internal/utils"
	"gorm.io/gorm"
)

// ActivityHandler handles the activity feed route
type ActivityHandler struct {
	DB *gorm.DB
}

// RecentActivities handles GET /api/activities?limit=N
// @Summary Recent activity feed
// @Description List the newest activity entries for the current user
// @Tags Activities
// @Produce json
// @Param limit query int false "Maximum entries to return (default 10, cap 100)"
// @Success 200 {array} models.Activity
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /activities [get]
func (h *ActivityHandler) RecentActivities(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	entries, err := services.RecentActivities(h.DB, userID, c.QueryInt("limit"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	if entries == nil {
		entries = []models.Activity{}
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}
