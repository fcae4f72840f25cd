package apiv1

import (
	"connect-skills-backend/controllers"
	filestorage "connect-skills-backend/lib/file-storage"
	"connect-skills-backend/middleware"
	apimodels "connect-skills-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type fileApiController struct {
	controllers.BaseAPIController
}

func InitFileApiRouters(app *fiber.App) {
	controller := fileApiController{}
	app.Route("files", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired()).Get(":id", controller.download)
	})
}

// @Summary Download file
// @Tags Files
// @Description Download a stored file by id
// @Param	id				path		string	true	"file id"
// @Success 200
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files/{id} [get]
func (c *fileApiController) download(ctx *fiber.Ctx) error {
	data, contentType, err := filestorage.Instance.GetFile(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("file not found"))
	}
	ctx.Set(fiber.HeaderContentType, contentType)
	return ctx.Status(fiber.StatusOK).Send(data)
}
