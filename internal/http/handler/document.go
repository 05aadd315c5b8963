package handler

import (
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"

	"logidocs/internal/service"
)

// UploadFormField is the multipart field carrying the document.
const UploadFormField = "evrak"

// UploadDocument handles POST /api/participants/:participantId/documents
// (multipart/form-data, field name: evrak).
// @Summary Upload a document for a participant
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param participantId path string true "participant id"
// @Param evrak formData file true "document"
// @Success 201 {object} model.DocumentView
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/participants/{participantId}/documents [post]
func UploadDocument(svc service.DocumentService, publicURL, mount string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		participantID, ok := uuidParam(c, "participantId")
		if !ok {
			return writeInvalidID(c)
		}

		fh, err := c.FormFile(UploadFormField)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct, err := contentType(fh, f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot read uploaded file")
		}

		doc, err := svc.Upload(c.UserContext(), service.UploadInput{
			ParticipantID:    participantID,
			Reader:           f,
			OriginalFilename: fh.Filename,
			ContentType:      ct,
			Size:             fh.Size,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(service.NewDocumentView(publicBase(c, publicURL, mount), *doc))
	}
}

// contentType trusts the part header unless it is missing or generic, in which
// case the content is sniffed and f is rewound.
func contentType(fh *multipart.FileHeader, f multipart.File) (string, error) {
	ct := fh.Header.Get(fiber.HeaderContentType)
	if ct != "" && ct != fiber.MIMEOctetStream {
		return ct, nil
	}
	m, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return m.String(), nil
}

// ListDocuments handles GET /api/participants/:participantId/documents, newest first.
// @Summary List a participant's documents
// @Tags documents
// @Produce json
// @Param participantId path string true "participant id"
// @Success 200 {array} model.DocumentView
// @Failure 404 {object} errorPayload
// @Router /api/participants/{participantId}/documents [get]
func ListDocuments(svc service.DocumentService, publicURL, mount string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		participantID, ok := uuidParam(c, "participantId")
		if !ok {
			return writeInvalidID(c)
		}

		docs, err := svc.ListByParticipant(c.UserContext(), participantID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(service.NewDocumentViews(publicBase(c, publicURL, mount), docs))
	}
}

// DeleteDocument handles DELETE /api/files/documents/:documentId.
// @Summary Delete a single document and its file
// @Tags documents
// @Produce json
// @Param documentId path string true "document id"
// @Success 200 {object} messagePayload
// @Failure 404 {object} errorPayload
// @Router /api/files/documents/{documentId} [delete]
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "documentId")
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

// GetDocument handles GET /api/files/documents/:documentId.
func GetDocument(svc service.DocumentService, publicURL, mount string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "documentId")
		if !ok {
			return writeInvalidID(c)
		}

		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(service.NewDocumentView(publicBase(c, publicURL, mount), *doc))
	}
}
