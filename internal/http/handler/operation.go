package handler

import (
	"github.com/gofiber/fiber/v2"

	"logidocs/internal/service"
)

type createOperationRequest struct {
	// OperationNumberInput is the field name older clients send.
	OperationNumberInput string `json:"operationNumberInput" validate:"required_without=OperationNumber,max=64"`
	OperationNumber      string `json:"operationNumber" validate:"max=64"`
	Name                 string `json:"name" validate:"required,max=255"`
	Type                 string `json:"type" validate:"required"`
}

type updateOperationRequest struct {
	Name *string `json:"name" validate:"omitempty,max=255"`
	Type *string `json:"type"`
}

// CreateOperation handles POST /api/operations.
// @Summary Create an operation
// @Tags operations
// @Accept json
// @Produce json
// @Success 201 {object} model.Operation
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /api/operations [post]
func CreateOperation(svc service.OperationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createOperationRequest
		if ok, err := bindBody(c, &req); !ok {
			return err
		}
		number := req.OperationNumber
		if number == "" {
			number = req.OperationNumberInput
		}

		op, err := svc.Create(c.UserContext(), service.CreateOperationInput{
			OperationNumber: number,
			Name:            req.Name,
			Type:            req.Type,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(op)
	}
}

// ListOperations handles GET /api/operations.
// @Summary List operations
// @Tags operations
// @Produce json
// @Param searchTerm query string false "matches name or number"
// @Param typeFilter query string false "ithalat or ihracat"
// @Param sortBy query string false "createdAt, name, operationNumber or type"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} service.OperationListResult
// @Router /api/operations [get]
func ListOperations(svc service.OperationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		paging, code, ok := pageParams(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, code, "page and limit must be integers")
		}

		res, err := svc.List(c.UserContext(), service.OperationListQuery{
			Search:     c.Query("searchTerm"),
			Type:       c.Query("typeFilter"),
			SortBy:     c.Query("sortBy"),
			SortOrder:  c.Query("sortOrder"),
			PageParams: paging,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// NextOperationNumber handles GET /api/operations/next-number.
func NextOperationNumber(svc service.OperationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := svc.NextNumber(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"operationNumber": number})
	}
}

// GetOperation handles GET /api/operations/:id and returns the full detail tree.
// @Summary Operation detail
// @Tags operations
// @Produce json
// @Param id path string true "operation id"
// @Success 200 {object} model.OperationDetail
// @Failure 404 {object} errorPayload
// @Router /api/operations/{id} [get]
func GetOperation(svc service.OperationService, publicURL, mount string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return writeInvalidID(c)
		}

		detail, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		service.FillFullPaths(publicBase(c, publicURL, mount), detail)
		return c.JSON(detail)
	}
}

// UpdateOperation handles PUT /api/operations/:id. The operation number is fixed.
func UpdateOperation(svc service.OperationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return writeInvalidID(c)
		}
		var req updateOperationRequest
		if ok, err := bindBody(c, &req); !ok {
			return err
		}

		op, err := svc.Update(c.UserContext(), id, service.UpdateOperationInput{
			Name: req.Name,
			Type: req.Type,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(op)
	}
}

// DeleteOperation handles DELETE /api/operations/:id.
// @Summary Delete an operation with all participants, documents and files
// @Tags operations
// @Produce json
// @Param id path string true "operation id"
// @Success 200 {object} messagePayload
// @Failure 404 {object} errorPayload
// @Router /api/operations/{id} [delete]
func DeleteOperation(svc service.CascadeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return writeInvalidID(c)
		}

		res, err := svc.DeleteOperation(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(messagePayload{Message: res.Message})
	}
}
