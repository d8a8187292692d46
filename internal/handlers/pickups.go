package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/ewastedb/internal/models"
	"github.com/greenloop/ewastedb/internal/services"
	"github.com/greenloop/ewastedb/internal/types"
	"github.com/greenloop/ewastedb/internal/utils"
	"gorm.io/gorm"
)

// PickupHandler handles pickup scheduling routes
type PickupHandler struct {
	DB *gorm.DB
}

// SchedulePickupRequest is the POST /api/pickups body.
type SchedulePickupRequest struct {
	Address    string         `json:"address" validate:"required"`
	PickupDate types.FlexTime `json:"pickupDate"`
	Devices    []string       `json:"devices" validate:"required,min=1"`
}

// ListPickups handles GET /api/pickups
// @Summary List pickups
// @Description List all pickups for the current user, newest first
// @Tags Pickups
// @Produce json
// @Success 200 {array} models.Pickup
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /pickups [get]
func (h *PickupHandler) ListPickups(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	pickups, err := services.ListPickups(h.DB, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	if pickups == nil {
		pickups = []models.Pickup{}
	}
	return c.Status(fiber.StatusOK).JSON(pickups)
}

// SchedulePickup handles POST /api/pickups
// @Summary Schedule a pickup
// @Description Schedule a collection for one or more pending devices within the next 3 months
// @Tags Pickups
// @Accept json
// @Produce json
// @Param body body SchedulePickupRequest true "Pickup to schedule"
// @Success 201 {object} models.Pickup
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /pickups [post]
func (h *PickupHandler) SchedulePickup(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	var body SchedulePickupRequest
	if err := parseBody(c, &body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.KindValidation)
	}

	pickup, err := services.SchedulePickup(h.DB, userID, body.Address, body.PickupDate.Time(), body.Devices)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, pickup)
}

// CompletePickup handles POST /api/pickups/:id/complete
// @Summary Complete a pickup
// @Description Mark a scheduled pickup completed; its devices become recycled
// @Tags Pickups
// @Produce json
// @Param id path string true "Pickup ID"
// @Success 200 {object} models.Pickup
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /pickups/{id}/complete [post]
func (h *PickupHandler) CompletePickup(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	pickup, err := services.CompletePickup(h.DB, userID, c.Params("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(pickup)
}

// CancelPickup handles POST /api/pickups/:id/cancel
// @Summary Cancel a pickup
// @Description Cancel a scheduled pickup; its devices return to the pending pool
// @Tags Pickups
// @Produce json
// @Param id path string true "Pickup ID"
// @Success 200 {object} models.Pickup
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /pickups/{id}/cancel [post]
func (h *PickupHandler) CancelPickup(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	pickup, err := services.CancelPickup(h.DB, userID, c.Params("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(pickup)
}
