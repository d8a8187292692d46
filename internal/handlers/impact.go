package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/ewastedb/internal/services"
	"github.com/greenloop/ewastedb/internal/types"
	"github.com/greenloop/ewastedb/internal/utils"
	"gorm.io/gorm"
)

// ImpactHandler handles the impact snapshot route
type ImpactHandler struct {
	DB *gorm.DB
}

// GetImpact handles GET /api/impact
// @Summary Environmental impact snapshot
// @Description Compute device counts, CO2/material savings and badge tier for the current user
// @Tags Impact
// @Produce json
// @Success 200 {object} services.ImpactSnapshot
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /impact [get]
func (h *ImpactHandler) GetImpact(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	snapshot, err := services.ComputeImpact(h.DB, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(snapshot)
}
