package apiv1

import (
	"fmt"

	"connect-skills-backend/controllers"
	evaluationhandler "connect-skills-backend/lib/evaluation"
	authutils "connect-skills-backend/lib/utils/auth-utils"
	"connect-skills-backend/lib/utils/helpers"
	"connect-skills-backend/middleware"
	apimodels "connect-skills-backend/models/api"
	applicationapimodels "connect-skills-backend/models/api/application"

	"github.com/gofiber/fiber/v2"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("applications", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.apply)
		router.Get("my", controller.listOwn)
		router.Post("upload-video", controller.uploadVideo)
		router.Get("vacancy/:id", controller.listByVacancy)
		router.Get("vacancy/:id/export", controller.exportByVacancy)
		router.Post(":id/score", controller.setScore)
		router.Post(":id/request-video", controller.requestVideo)
		router.Post(":id/feedback", controller.leaveFeedback)
	})
}

// @Summary Apply to a vacancy
// @Tags Applications
// @Description Apply the current candidate to a published vacancy
// @Param	body				body		applicationapimodels.ApplyRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications [post]
func (c *applicationApiController) apply(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplyRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := evaluationhandler.Instance.Apply(authutils.GetUserID(ctx), payload.VacancyID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Own applications
// @Tags Applications
// @Description List applications of the current candidate
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/my [get]
func (c *applicationApiController) listOwn(ctx *fiber.Ctx) error {
	list, err := evaluationhandler.Instance.ListOwn(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Upload video answer
// @Tags Applications
// @Description Upload the requested video answer for a vacancy
// @Param	vacancy_id	formData	string	true	"vacancy id"
// @Param   file		formData	file	true	"video file"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/upload-video [post]
func (c *applicationApiController) uploadVideo(ctx *fiber.Ctx) error {
	vacancyID := ctx.FormValue("vacancy_id")
	if vacancyID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("vacancy id is required"))
	}
	fileBody, file, err := c.ReadFormFile(ctx, "file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	contentType := helpers.GetFileContentType(file)
	err = evaluationhandler.Instance.SubmitVideo(ctx.UserContext(), authutils.GetUserID(ctx), vacancyID, fileBody, file.Filename, contentType)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Vacancy applications
// @Tags Applications
// @Description List applications to an owned vacancy
// @Param	id				path		string	true	"vacancy id"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/vacancy/{id} [get]
func (c *applicationApiController) listByVacancy(ctx *fiber.Ctx) error {
	list, err := evaluationhandler.Instance.ListByVacancy(authutils.GetUserID(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Export vacancy applications
// @Tags Applications
// @Description Download applications to an owned vacancy as xlsx
// @Param	id				path		string	true	"vacancy id"
// @Success 200
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/vacancy/{id}/export [get]
func (c *applicationApiController) exportByVacancy(ctx *fiber.Ctx) error {
	vacancyID := ctx.Params("id")
	buf, err := evaluationhandler.Instance.ExportByVacancy(authutils.GetUserID(ctx), vacancyID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="applications_%s.xlsx"`, vacancyID))
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Score an application
// @Tags Applications
// @Description Set the score of an application to an owned vacancy
// @Param	id				path		string	true	"application id"
// @Param	body				body		applicationapimodels.ScoreRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/score [post]
func (c *applicationApiController) setScore(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ScoreRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := evaluationhandler.Instance.SetScore(authutils.GetUserID(ctx), ctx.Params("id"), payload.Score); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Request a video answer
// @Tags Applications
// @Description Ask the candidate for a video answer
// @Param	id				path		string	true	"application id"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/request-video [post]
func (c *applicationApiController) requestVideo(ctx *fiber.Ctx) error {
	if err := evaluationhandler.Instance.RequestVideo(authutils.GetUserID(ctx), ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Leave feedback
// @Tags Applications
// @Description Leave final feedback on an application
// @Param	id				path		string	true	"application id"
// @Param	body				body		applicationapimodels.FeedbackRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/feedback [post]
func (c *applicationApiController) leaveFeedback(ctx *fiber.Ctx) error {
	var payload applicationapimodels.FeedbackRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := evaluationhandler.Instance.LeaveFeedback(authutils.GetUserID(ctx), ctx.Params("id"), payload.Status); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
