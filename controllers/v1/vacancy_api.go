package apiv1

import (
	"connect-skills-backend/controllers"
	authutils "connect-skills-backend/lib/utils/auth-utils"
	vacancyhandler "connect-skills-backend/lib/vacancy"
	"connect-skills-backend/middleware"
	apimodels "connect-skills-backend/models/api"
	vacancyapimodels "connect-skills-backend/models/api/vacancy"

	"github.com/gofiber/fiber/v2"
)

type vacancyApiController struct {
	controllers.BaseAPIController
}

func InitVacancyApiRouters(app *fiber.App) {
	controller := vacancyApiController{}
	app.Route("vacancy", func(router fiber.Router) {
		router.Post("list", controller.listPublished)
		router.Get(":id/view", controller.getByID)
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.create)
		router.Get("my", controller.listOwn)
		router.Put(":id", controller.update)
		router.Post(":id/publish", controller.publish)
		router.Post(":id/unpublish", controller.unpublish)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Published vacancies
// @Tags Vacancy
// @Description List published vacancies with filter and pagination
// @Param	body				body		vacancyapimodels.VacancyFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/list [post]
func (c *vacancyApiController) listPublished(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.VacancyFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := vacancyhandler.Instance.ListPublished(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Vacancy page
// @Tags Vacancy
// @Description Get a vacancy by id
// @Param	id				path		string	true	"vacancy id"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/view [get]
func (c *vacancyApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := vacancyhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create vacancy
// @Tags Vacancy
// @Description Create a vacancy for the current company
// @Param	body				body		vacancyapimodels.VacancyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy [post]
func (c *vacancyApiController) create(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.VacancyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := vacancyhandler.Instance.Create(authutils.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Own vacancies
// @Tags Vacancy
// @Description List vacancies of the current company
// @Success 200 {object} apimodels.Response{data=[]vacancyapimodels.VacancyView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/my [get]
func (c *vacancyApiController) listOwn(ctx *fiber.Ctx) error {
	list, err := vacancyhandler.Instance.ListOwn(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Update vacancy
// @Tags Vacancy
// @Description Update an owned vacancy
// @Param	id				path		string	true	"vacancy id"
// @Param	body				body		vacancyapimodels.VacancyData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id} [put]
func (c *vacancyApiController) update(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.VacancyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := vacancyhandler.Instance.Update(authutils.GetUserID(ctx), ctx.Params("id"), payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Publish vacancy
// @Tags Vacancy
// @Description Make an owned vacancy visible to candidates
// @Param	id				path		string	true	"vacancy id"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/publish [post]
func (c *vacancyApiController) publish(ctx *fiber.Ctx) error {
	if err := vacancyhandler.Instance.SetPublished(authutils.GetUserID(ctx), ctx.Params("id"), true); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Unpublish vacancy
// @Tags Vacancy
// @Description Hide an owned vacancy from candidates
// @Param	id				path		string	true	"vacancy id"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/unpublish [post]
func (c *vacancyApiController) unpublish(ctx *fiber.Ctx) error {
	if err := vacancyhandler.Instance.SetPublished(authutils.GetUserID(ctx), ctx.Params("id"), false); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete vacancy
// @Tags Vacancy
// @Description Delete an owned vacancy
// @Param	id				path		string	true	"vacancy id"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id} [delete]
func (c *vacancyApiController) delete(ctx *fiber.Ctx) error {
	if err := vacancyhandler.Instance.Delete(authutils.GetUserID(ctx), ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
