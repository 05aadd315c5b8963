package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"logidocs/internal/model"
	"logidocs/internal/service"
	serviceMocks "logidocs/internal/service/mocks"
)

func jsonRequest(method, target string, body any) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestCreateOperation(t *testing.T) {
	mockSvc := new(serviceMocks.MockOperationService)
	app := fiber.New()
	app.Post("/operations", CreateOperation(mockSvc))

	t.Run("success with legacy number field", func(t *testing.T) {
		in := service.CreateOperationInput{OperationNumber: "OP-2024-0007", Name: "Kahve ithalati", Type: "ithalat"}
		expected := &model.Operation{ID: uuid.New().String(), OperationNumber: in.OperationNumber, Name: in.Name, Type: model.OperationImport}
		mockSvc.On("Create", mock.Anything, in).Return(expected, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/operations", map[string]string{
			"operationNumberInput": "OP-2024-0007",
			"name":                 "Kahve ithalati",
			"type":                 "ithalat",
		}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var result model.Operation
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expected.ID, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing number", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/operations", map[string]string{
			"name": "Kahve ithalati",
			"type": "ithalat",
		}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Contains(t, body.Error.Message, "operationNumberInput is required")
	})

	t.Run("invalid json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/operations", bytes.NewBufferString("{"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	t.Run("duplicate number", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: operation number OP-2024-0007 is already in use", service.ErrConflict)).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/operations", map[string]string{
			"operationNumber": "OP-2024-0007",
			"name":            "Kahve ithalati",
			"type":            "ithalat",
		}))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "CONFLICT", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestListOperations(t *testing.T) {
	mockSvc := new(serviceMocks.MockOperationService)
	app := fiber.New()
	app.Get("/operations", ListOperations(mockSvc))

	t.Run("passes filters through", func(t *testing.T) {
		q := service.OperationListQuery{
			Search:     "kahve",
			Type:       "ithalat",
			SortBy:     "name",
			SortOrder:  "asc",
			PageParams: service.PageParams{Page: 2, Limit: 10},
		}
		expected := &service.OperationListResult{
			Operations:  []model.Operation{{ID: uuid.New().String(), Name: "Kahve ithalati"}},
			CurrentPage: 2,
			TotalPages:  2,
			TotalItems:  11,
		}
		mockSvc.On("List", mock.Anything, q).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/operations?searchTerm=kahve&typeFilter=ithalat&sortBy=name&sortOrder=asc&page=2&limit=10", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result service.OperationListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Operations, 1)
		assert.Equal(t, 11, result.TotalItems)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/operations?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/operations?page=x", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_PAGE", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("service error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/operations", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetOperation(t *testing.T) {
	mockSvc := new(serviceMocks.MockOperationService)
	app := fiber.New()
	app.Get("/operations/:id", GetOperation(mockSvc, "https://files.example.com/uploads/", "/uploads"))

	t.Run("success fills full paths", func(t *testing.T) {
		id := uuid.New().String()
		detail := &model.OperationDetail{
			Operation: model.Operation{ID: id, OperationNumber: "OP-2024-0007"},
			Participants: []model.ParticipantDetail{{
				Participant: model.Participant{ID: "p-1", Role: model.RoleSupplier},
				Documents: []model.DocumentView{{
					Document: model.Document{ID: "d-1", FilePath: "op-2024-0007/acme-tedarikci/x_fatura.pdf"},
				}},
				DocumentCount: 1,
			}},
		}
		mockSvc.On("Get", mock.Anything, id).Return(detail, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/operations/"+id, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.OperationDetail
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t,
			"https://files.example.com/uploads/op-2024-0007/acme-tedarikci/x_fatura.pdf",
			result.Participants[0].Documents[0].FullPath)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/operations/invalid-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, fmt.Errorf("%w: operation not found", service.ErrNotFound)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/operations/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateOperation(t *testing.T) {
	mockSvc := new(serviceMocks.MockOperationService)
	app := fiber.New()
	app.Put("/operations/:id", UpdateOperation(mockSvc))

	id := uuid.New().String()
	name := "Kahve ihracati"
	mockSvc.On("Update", mock.Anything, id, mock.MatchedBy(func(in service.UpdateOperationInput) bool {
		return in.Name != nil && *in.Name == name && in.Type == nil
	})).Return(&model.Operation{ID: id, Name: name}, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPut, "/operations/"+id, map[string]string{"name": name}))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestDeleteOperation(t *testing.T) {
	mockSvc := new(serviceMocks.MockCascadeService)
	app := fiber.New()
	app.Delete("/operations/:id", DeleteOperation(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		msg := "Operation 'Kahve ithalati' and all of its related data were deleted."
		mockSvc.On("DeleteOperation", mock.Anything, id).Return(&service.DeletionResult{Message: msg}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/operations/"+id, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body messagePayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, msg, body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("DeleteOperation", mock.Anything, id).Return(nil, fmt.Errorf("%w: operation not found", service.ErrNotFound)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/operations/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
