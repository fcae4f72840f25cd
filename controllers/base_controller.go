package controllers

import (
	"io"
	"mime/multipart"

	"connect-skills-backend/models"
	apimodels "connect-skills-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) ReadFormFile(ctx *fiber.Ctx, field string) ([]byte, *multipart.FileHeader, error) {
	file, err := ctx.FormFile(field)
	if err != nil {
		return nil, nil, errors.New("failed to get uploaded file")
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("failed to open uploaded file")
		return nil, nil, errors.New("failed to read uploaded file")
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("failed to read uploaded file")
		return nil, nil, errors.New("failed to read uploaded file")
	}
	return fileBody, file, nil
}

// SendError maps known sentinel errors to status codes, anything else is a
// 500 with a generic message so internals never leak to the client.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		return ctx.SendStatus(fiber.StatusUnauthorized)
	case errors.Is(err, models.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrInvalidInput), errors.Is(err, models.ErrAlreadyExists):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	log.WithError(err).WithField("path", ctx.Path()).Error("request failed")
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
}
