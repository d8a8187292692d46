package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/ewastedb/internal/services"
	"github.com/greenloop/ewastedb/internal/types"
	"github.com/greenloop/ewastedb/internal/utils"
	"gorm.io/gorm"
)

// ProfileHandler handles profile routes
type ProfileHandler struct {
	DB *gorm.DB
}

// UpsertProfileRequest is the PUT /api/profile body.
type UpsertProfileRequest struct {
	Username string `json:"username" validate:"max=255"`
	FullName string `json:"fullName" validate:"max=255"`
}

// GetProfile handles GET /api/profile
// @Summary Get profile
// @Description Read the current user's profile; an empty profile is returned when none is saved
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	profile, err := services.GetProfile(h.DB, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// UpsertProfile handles PUT /api/profile
// @Summary Update profile
// @Description Create or update the current user's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param body body UpsertProfileRequest true "Profile fields"
// @Success 200 {object} models.Profile
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /profile [put]
func (h *ProfileHandler) UpsertProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	var body UpsertProfileRequest
	if err := parseBody(c, &body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.KindValidation)
	}

	profile, err := services.UpsertProfile(h.DB, userID, body.Username, body.FullName)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}
