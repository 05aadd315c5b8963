package handler

import (
	"github.com/gofiber/fiber/v2"

	"logidocs/internal/service"
)

type createParticipantRequest struct {
	GlobalCompanyID string `json:"globalCompanyId" validate:"required,uuid"`
	Role            string `json:"role" validate:"required"`
}

// CreateParticipant handles POST /api/operations/:operationId/participants.
// @Summary Add a company to an operation with a role
// @Tags participants
// @Accept json
// @Produce json
// @Param operationId path string true "operation id"
// @Success 201 {object} model.ParticipantDetail
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /api/operations/{operationId}/participants [post]
func CreateParticipant(svc service.ParticipantService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		operationID, ok := uuidParam(c, "operationId")
		if !ok {
			return writeInvalidID(c)
		}
		var req createParticipantRequest
		if ok, err := bindBody(c, &req); !ok {
			return err
		}

		p, err := svc.Create(c.UserContext(), operationID, service.CreateParticipantInput{
			GlobalCompanyID: req.GlobalCompanyID,
			Role:            req.Role,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// ListParticipants handles GET /api/operations/:operationId/participants.
func ListParticipants(svc service.ParticipantService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		operationID, ok := uuidParam(c, "operationId")
		if !ok {
			return writeInvalidID(c)
		}
		list, err := svc.List(c.UserContext(), operationID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(list)
	}
}

// DeleteParticipant handles DELETE /api/operations/:operationId/participants/:participantId.
// @Summary Remove a participant with its documents and files
// @Tags participants
// @Produce json
// @Param operationId path string true "operation id"
// @Param participantId path string true "participant id"
// @Success 200 {object} messagePayload
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/operations/{operationId}/participants/{participantId} [delete]
func DeleteParticipant(svc service.CascadeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		operationID, ok := uuidParam(c, "operationId")
		if !ok {
			return writeInvalidID(c)
		}
		participantID, ok := uuidParam(c, "participantId")
		if !ok {
			return writeInvalidID(c)
		}

		res, err := svc.DeleteParticipant(c.UserContext(), operationID, participantID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(messagePayload{Message: res.Message})
	}
}
