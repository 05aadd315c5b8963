package handler

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"

	"logidocs/internal/config"
	"logidocs/internal/http/middleware"
	"logidocs/internal/service"
)

// Services groups the use cases the HTTP layer depends on.
type Services struct {
	Operations   service.OperationService
	Companies    service.CompanyService
	Participants service.ParticipantService
	Documents    service.DocumentService
	Cascade      service.CascadeService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Everything under /api requires a bearer token unless auth is disabled.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services, cfg *config.AppConfig) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/swagger/*", swaggerUI())

	// Stored files are served straight from the storage root
	app.Static(cfg.Storage.PublicMount, cfg.Storage.Root, fiber.Static{
		Download: false,
		Browse:   false,
	})

	base, mount := cfg.PublicBaseURL, cfg.Storage.PublicMount

	api := app.Group("/api", middleware.Auth(cfg.Auth))

	ops := api.Group("/operations")
	ops.Post("/", CreateOperation(svcs.Operations))
	ops.Get("/", ListOperations(svcs.Operations))
	ops.Get("/next-number", NextOperationNumber(svcs.Operations))
	ops.Get("/:id", GetOperation(svcs.Operations, base, mount))
	ops.Put("/:id", UpdateOperation(svcs.Operations))
	ops.Delete("/:id", DeleteOperation(svcs.Cascade))

	ops.Post("/:operationId/participants", CreateParticipant(svcs.Participants))
	ops.Get("/:operationId/participants", ListParticipants(svcs.Participants))
	ops.Delete("/:operationId/participants/:participantId", DeleteParticipant(svcs.Cascade))

	api.Post("/participants/:participantId/documents", UploadDocument(svcs.Documents, base, mount))
	api.Get("/participants/:participantId/documents", ListDocuments(svcs.Documents, base, mount))

	api.Get("/files/documents/:documentId", GetDocument(svcs.Documents, base, mount))
	api.Delete("/files/documents/:documentId", DeleteDocument(svcs.Documents))

	companies := api.Group("/global-companies")
	companies.Post("/", CreateCompany(svcs.Companies))
	companies.Get("/", ListCompanies(svcs.Companies))
	companies.Get("/all", ListAllCompanies(svcs.Companies))
	companies.Get("/:id", GetCompany(svcs.Companies))
	companies.Put("/:id", UpdateCompany(svcs.Companies))
	companies.Delete("/:id", DeleteCompany(svcs.Companies))
}

// swaggerUI serves the generated docs with the host and scheme of the request.
func swaggerUI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if info, ok := swag.GetSwagger(swag.Name).(*swag.Spec); ok {
			scheme := c.Protocol()
			if proto := c.Get("X-Forwarded-Proto"); proto != "" {
				scheme = strings.Split(proto, ",")[0]
			}
			info.Host = c.Get("Host")
			info.Schemes = []string{scheme}
		}
		return swagger.HandlerDefault(c)
	}
}
