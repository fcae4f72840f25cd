package apiv1

import (
	"connect-skills-backend/controllers"
	companyhandler "connect-skills-backend/lib/company"
	filestorage "connect-skills-backend/lib/file-storage"
	authutils "connect-skills-backend/lib/utils/auth-utils"
	"connect-skills-backend/lib/utils/helpers"
	"connect-skills-backend/middleware"
	apimodels "connect-skills-backend/models/api"
	companyapimodels "connect-skills-backend/models/api/company"

	"github.com/gofiber/fiber/v2"
)

type companyApiController struct {
	controllers.BaseAPIController
}

func InitCompanyApiRouters(app *fiber.App) {
	controller := companyApiController{}
	app.Route("company", func(router fiber.Router) {
		router.Get(":id/view", controller.getByID)
		router.Use(middleware.AuthorizationRequired())
		router.Get("profile", controller.getProfile)
		router.Put("profile", controller.updateProfile)
		router.Post("logo", controller.uploadLogo)
	})
}

// @Summary Public company page
// @Tags Company
// @Description Get a company by id
// @Param	id				path		string	true	"company id"
// @Success 200 {object} apimodels.Response{data=companyapimodels.CompanyView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/{id}/view [get]
func (c *companyApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := companyhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Company profile
// @Tags Company
// @Description Get the current company profile
// @Success 200 {object} apimodels.Response{data=companyapimodels.CompanyView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/profile [get]
func (c *companyApiController) getProfile(ctx *fiber.Ctx) error {
	resp, err := companyhandler.Instance.GetByUserID(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update company profile
// @Tags Company
// @Description Update the current company profile
// @Param	body				body		companyapimodels.CompanyData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/profile [put]
func (c *companyApiController) updateProfile(ctx *fiber.Ctx) error {
	var payload companyapimodels.CompanyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := companyhandler.Instance.Update(authutils.GetUserID(ctx), payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload company logo
// @Tags Company
// @Description Upload the company logo
// @Param   file	formData	file	true	"logo file"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/logo [post]
func (c *companyApiController) uploadLogo(ctx *fiber.Ctx) error {
	view, err := companyhandler.Instance.GetByUserID(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	fileBody, file, err := c.ReadFormFile(ctx, "file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	contentType := helpers.GetFileContentType(file)
	err = filestorage.Instance.UploadLogo(ctx.UserContext(), view.ID, fileBody, file.Filename, contentType)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
