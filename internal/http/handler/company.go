package handler

import (
	"github.com/gofiber/fiber/v2"

	"logidocs/internal/service"
)

type companyRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=255"`
	Address   *string `json:"address"`
	TaxNumber *string `json:"taxNumber" validate:"omitempty,max=64"`
	Contact   *string `json:"contact"`
}

func (r companyRequest) input() service.CompanyInput {
	return service.CompanyInput{
		Name:      r.Name,
		Address:   r.Address,
		TaxNumber: r.TaxNumber,
		Contact:   r.Contact,
	}
}

// CreateCompany handles POST /api/global-companies.
// @Summary Create a global company
// @Tags global-companies
// @Accept json
// @Produce json
// @Success 201 {object} model.GlobalCompany
// @Failure 409 {object} errorPayload
// @Router /api/global-companies [post]
func CreateCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req companyRequest
		if ok, err := bindBody(c, &req); !ok {
			return err
		}
		if req.Name == nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "name is required")
		}

		company, err := svc.Create(c.UserContext(), req.input())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(company)
	}
}

// ListCompanies handles GET /api/global-companies.
// @Summary List global companies
// @Tags global-companies
// @Produce json
// @Param searchTerm query string false "matches name, address, tax number or contact"
// @Param sortBy query string false "name or createdAt"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} service.CompanyListResult
// @Router /api/global-companies [get]
func ListCompanies(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		paging, code, ok := pageParams(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, code, "page and limit must be integers")
		}

		res, err := svc.List(c.UserContext(), service.CompanyListQuery{
			Search:     c.Query("searchTerm"),
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

// ListAllCompanies handles GET /api/global-companies/all, used by selection lists.
func ListAllCompanies(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companies, err := svc.ListAll(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(companies)
	}
}

// GetCompany handles GET /api/global-companies/:id.
func GetCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return writeInvalidID(c)
		}
		company, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(company)
	}
}

// UpdateCompany handles PUT /api/global-companies/:id.
// Renaming does not move existing document folders.
func UpdateCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return writeInvalidID(c)
		}
		var req companyRequest
		if ok, err := bindBody(c, &req); !ok {
			return err
		}

		company, err := svc.Update(c.UserContext(), id, req.input())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(company)
	}
}

// DeleteCompany handles DELETE /api/global-companies/:id.
// @Summary Delete a global company that no participant references
// @Tags global-companies
// @Produce json
// @Param id path string true "company id"
// @Success 200 {object} messagePayload
// @Failure 409 {object} errorPayload
// @Router /api/global-companies/{id} [delete]
func DeleteCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return writeInvalidID(c)
		}
		res, err := svc.Delete(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(messagePayload{Message: res.Message})
	}
}
