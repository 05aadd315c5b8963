package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"logidocs/internal/model"
	"logidocs/internal/service"
	serviceMocks "logidocs/internal/service/mocks"
)

const pdfContent = "%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<< /Type /Catalog >>\nendobj\n"

// multipartBody builds a body with one file part. An empty contentType keeps the
// writer default of application/octet-stream.
func multipartBody(field, filename, contentType, content string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	var part io.Writer
	if contentType == "" {
		part, _ = writer.CreateFormFile(field, filename)
	} else {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
		h.Set("Content-Type", contentType)
		part, _ = writer.CreatePart(h)
	}
	part.Write([]byte(content))
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestUploadDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Post("/participants/:participantId/documents", UploadDocument(mockSvc, "", "/uploads"))

	participantID := uuid.New().String()
	target := "/participants/" + participantID + "/documents"

	t.Run("sniffs generic content type", func(t *testing.T) {
		body, ct := multipartBody(UploadFormField, "fatura.pdf", "", pdfContent)

		expectedDoc := &model.Document{
			ID:            uuid.New().String(),
			FilePath:      "op-2024-0007/acme-irketi-a-tedarikci/x_fatura.pdf",
			ParticipantID: participantID,
		}
		mockSvc.On("Upload", mock.Anything, mock.MatchedBy(func(in service.UploadInput) bool {
			return in.ParticipantID == participantID &&
				in.OriginalFilename == "fatura.pdf" &&
				in.ContentType == "application/pdf" &&
				in.Size == int64(len(pdfContent))
		})).Return(expectedDoc, nil).Once()

		req := httptest.NewRequest(http.MethodPost, target, body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.DocumentView
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expectedDoc.ID, result.ID)
		assert.Equal(t, "http://example.com/uploads/op-2024-0007/acme-irketi-a-tedarikci/x_fatura.pdf", result.FullPath)
		mockSvc.AssertExpectations(t)
	})

	t.Run("keeps declared content type", func(t *testing.T) {
		body, ct := multipartBody(UploadFormField, "scan.png", "image/png", "not really a png")

		mockSvc.On("Upload", mock.Anything, mock.MatchedBy(func(in service.UploadInput) bool {
			return in.ContentType == "image/png"
		})).Return(&model.Document{ID: uuid.New().String()}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, target, body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("wrong field name", func(t *testing.T) {
		body, ct := multipartBody("file", "fatura.pdf", "", pdfContent)

		req := httptest.NewRequest(http.MethodPost, target, body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("no file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, target, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid participant id", func(t *testing.T) {
		body, ct := multipartBody(UploadFormField, "fatura.pdf", "", pdfContent)

		req := httptest.NewRequest(http.MethodPost, "/participants/nope/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("rejected type", func(t *testing.T) {
		body, ct := multipartBody(UploadFormField, "notes.txt", "text/plain", "hello")

		mockSvc.On("Upload", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: file type \"text/plain\" is not allowed", service.ErrValidation)).Once()

		req := httptest.NewRequest(http.MethodPost, target, body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("storage failure", func(t *testing.T) {
		body, ct := multipartBody(UploadFormField, "fatura.pdf", "", pdfContent)

		mockSvc.On("Upload", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: could not write the file", service.ErrStorage)).Once()

		req := httptest.NewRequest(http.MethodPost, target, body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "STORAGE_ERROR", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestListDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/participants/:participantId/documents", ListDocuments(mockSvc, "http://cdn.local/files", "/uploads"))

	t.Run("success", func(t *testing.T) {
		participantID := uuid.New().String()
		docs := []model.Document{
			{ID: "d-2", FilePath: "op/a-alici/2_b.pdf"},
			{ID: "d-1", FilePath: "op/a-alici/1_a.pdf"},
		}
		mockSvc.On("ListByParticipant", mock.Anything, participantID).Return(docs, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/participants/"+participantID+"/documents", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result []model.DocumentView
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result, 2)
		assert.Equal(t, "d-2", result[0].ID)
		assert.Equal(t, "http://cdn.local/files/op/a-alici/2_b.pdf", result[0].FullPath)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown participant", func(t *testing.T) {
		participantID := uuid.New().String()
		mockSvc.On("ListByParticipant", mock.Anything, participantID).
			Return(nil, fmt.Errorf("%w: participant not found", service.ErrNotFound)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/participants/"+participantID+"/documents", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/files/documents/:documentId", GetDocument(mockSvc, "http://cdn.local/files", "/uploads"))

	id := uuid.New().String()
	mockSvc.On("Get", mock.Anything, id).Return(&model.Document{ID: id, FilePath: "op/a-alici/1_a.pdf"}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/files/documents/"+id, nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var result model.DocumentView
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "http://cdn.local/files/op/a-alici/1_a.pdf", result.FullPath)
	mockSvc.AssertExpectations(t)
}

func TestDeleteDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Delete("/files/documents/:documentId", DeleteDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		msg := "Document 'fatura.pdf' was deleted."
		mockSvc.On("Delete", mock.Anything, id).Return(&service.DeletionResult{Message: msg}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/files/documents/"+id, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body messagePayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, msg, body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/files/documents/invalid-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(nil, fmt.Errorf("%w: document not found", service.ErrNotFound)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/files/documents/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}
