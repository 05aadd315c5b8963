package handler

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"logidocs/internal/service"
)

var validate = newValidator()

// newValidator reports json field names in validation messages.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindBody decodes and validates a JSON body. It writes the error response itself
// and reports false when the handler must stop.
func bindBody(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
	}
	if err := validate.Struct(dst); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", validationMessage(err))
	}
	return true, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "required_without":
			msgs = append(msgs, fe.Field()+" is required")
		case "uuid":
			msgs = append(msgs, fe.Field()+" must be a valid id")
		case "max":
			msgs = append(msgs, fe.Field()+" must be at most "+fe.Param()+" characters")
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}

// uuidParam returns the named route parameter when it is a valid UUID.
func uuidParam(c *fiber.Ctx, name string) (string, bool) {
	id := c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func writeInvalidID(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
}

// pageParams reads page and limit. Absent values stay zero so the service applies
// its defaults; range checks also live in the service.
func pageParams(c *fiber.Ctx) (service.PageParams, string, bool) {
	var p service.PageParams
	if s := c.Query("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return p, "INVALID_PAGE", false
		}
		p.Page = n
	}
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return p, "INVALID_LIMIT", false
		}
		p.Limit = n
	}
	return p, "", true
}

// publicBase returns the URL prefix documents are served under.
func publicBase(c *fiber.Ctx, configured, mount string) string {
	if configured != "" {
		return configured
	}
	return service.BuildPublicURL(c.BaseURL(), mount)
}
