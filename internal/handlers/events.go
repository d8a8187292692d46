package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/ewastedb/internal/models"
	"github.com/greenloop/ewastedb/internal/services"
	"github.com/greenloop/ewastedb/internal/types"
	"github.com/greenloop/ewastedb/internal/utils"
	"gorm.io/gorm"
)

// EventHandler handles community event signup routes
type EventHandler struct {
	DB *gorm.DB
}

// JoinEventRequest is the POST /api/events body.
type JoinEventRequest struct {
	EventID    int64          `json:"eventId" validate:"required"`
	EventTitle string         `json:"eventTitle" validate:"required"`
	EventDate  types.FlexTime `json:"eventDate"`
}

// ListEventSignups handles GET /api/events
// @Summary List event signups
// @Description List community events the current user has joined, soonest first
// @Tags Events
// @Produce json
// @Success 200 {array} models.EventSignup
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /events [get]
func (h *EventHandler) ListEventSignups(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	signups, err := services.ListEventSignups(h.DB, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	if signups == nil {
		signups = []models.EventSignup{}
	}
	return c.Status(fiber.StatusOK).JSON(signups)
}

// JoinEvent handles POST /api/events
// @Summary Join an event
// @Description Record that the current user is attending a community event
// @Tags Events
// @Accept json
// @Produce json
// @Param body body JoinEventRequest true "Event to join"
// @Success 201 {object} models.EventSignup
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /events [post]
func (h *EventHandler) JoinEvent(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	var body JoinEventRequest
	if err := parseBody(c, &body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.KindValidation)
	}

	signup, err := services.JoinEvent(h.DB, userID, body.EventID, body.EventTitle, body.EventDate.Time())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, signup)
}

// LeaveEvent handles DELETE /api/events/:id
// @Summary Leave an event
// @Description Remove the current user's signup for a community event
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /events/{id} [delete]
func (h *EventHandler) LeaveEvent(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, types.KindAuthRequired)
	}

	eventID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, "Invalid event id", fiber.StatusBadRequest, types.KindValidation)
	}

	if err := services.LeaveEvent(h.DB, userID, eventID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.MutationSuccessResponse(c, 1)
}
