package handler

import (
	"encoding/json"
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

func TestCreateParticipant(t *testing.T) {
	mockSvc := new(serviceMocks.MockParticipantService)
	app := fiber.New()
	app.Post("/operations/:operationId/participants", CreateParticipant(mockSvc))

	operationID := uuid.New().String()
	companyID := uuid.New().String()
	target := "/operations/" + operationID + "/participants"

	t.Run("success", func(t *testing.T) {
		in := service.CreateParticipantInput{GlobalCompanyID: companyID, Role: "Tedarikci"}
		mockSvc.On("Create", mock.Anything, operationID, in).Return(&model.ParticipantDetail{
			Participant:   model.Participant{ID: uuid.New().String(), OperationID: operationID, Role: model.RoleSupplier},
			GlobalCompany: &model.GlobalCompany{ID: companyID, Name: "Acme"},
		}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, target, map[string]string{
			"globalCompanyId": companyID,
			"role":            "Tedarikci",
		}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var result model.ParticipantDetail
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, model.RoleSupplier, result.Role)
		assert.Equal(t, "Acme", result.GlobalCompany.Name)
		mockSvc.AssertExpectations(t)
	})

	t.Run("company id must be a uuid", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, target, map[string]string{
			"globalCompanyId": "acme",
			"role":            "alici",
		}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Contains(t, body.Error.Message, "globalCompanyId")
	})

	t.Run("duplicate role", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, operationID, mock.Anything).
			Return(nil, fmt.Errorf("%w: Acme already takes part as alici", service.ErrConflict)).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, target, map[string]string{
			"globalCompanyId": companyID,
			"role":            "alici",
		}))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestListParticipants(t *testing.T) {
	mockSvc := new(serviceMocks.MockParticipantService)
	app := fiber.New()
	app.Get("/operations/:operationId/participants", ListParticipants(mockSvc))

	operationID := uuid.New().String()
	mockSvc.On("List", mock.Anything, operationID).Return([]model.ParticipantDetail{
		{Participant: model.Participant{ID: "p-1"}, DocumentCount: 3},
	}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/operations/"+operationID+"/participants", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var result []model.ParticipantDetail
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Len(t, result, 1)
	assert.Equal(t, 3, result[0].DocumentCount)
	mockSvc.AssertExpectations(t)
}

func TestDeleteParticipant(t *testing.T) {
	mockSvc := new(serviceMocks.MockCascadeService)
	app := fiber.New()
	app.Delete("/operations/:operationId/participants/:participantId", DeleteParticipant(mockSvc))

	operationID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		participantID := uuid.New().String()
		msg := "Participant 'Acme' (tedarikci) and all of its documents were removed from the operation."
		mockSvc.On("DeleteParticipant", mock.Anything, operationID, participantID).
			Return(&service.DeletionResult{Message: msg}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/operations/"+operationID+"/participants/"+participantID, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body messagePayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, msg, body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("belongs to another operation", func(t *testing.T) {
		participantID := uuid.New().String()
		mockSvc.On("DeleteParticipant", mock.Anything, operationID, participantID).
			Return(nil, fmt.Errorf("%w: participant does not belong to this operation", service.ErrForbidden)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/operations/"+operationID+"/participants/"+participantID, nil))

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "FORBIDDEN", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid participant id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/operations/"+operationID+"/participants/x", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})
}
