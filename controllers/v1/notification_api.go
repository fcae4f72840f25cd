package apiv1

import (
	"connect-skills-backend/controllers"
	notificationhandler "connect-skills-backend/lib/notification"
	authutils "connect-skills-backend/lib/utils/auth-utils"
	"connect-skills-backend/middleware"
	apimodels "connect-skills-backend/models/api"
	notificationapimodels "connect-skills-backend/models/api/notification"

	"github.com/gofiber/fiber/v2"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notifications", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.listCandidate)
		router.Post("mark-read", controller.markRead)
		router.Post("clear", controller.clearCandidate)
		router.Get("company", controller.listCompany)
		router.Post("company/clear", controller.clearCompany)
	})
}

// @Summary Candidate notifications
// @Tags Notifications
// @Description List active notifications of the current candidate
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.NotificationView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications [get]
func (c *notificationApiController) listCandidate(ctx *fiber.Ctx) error {
	list, err := notificationhandler.Instance.ListCandidate(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Mark notification as read
// @Tags Notifications
// @Description Mark a candidate notification as read
// @Param	body				body		notificationapimodels.MarkReadRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/mark-read [post]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	var payload notificationapimodels.MarkReadRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := notificationhandler.Instance.MarkRead(authutils.GetUserID(ctx), payload.NotificationID); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Clear candidate notifications
// @Tags Notifications
// @Description Dismiss all active notifications of the current candidate
// @Success 200 {object} apimodels.Response{data=notificationapimodels.ClearResponse}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/clear [post]
func (c *notificationApiController) clearCandidate(ctx *fiber.Ctx) error {
	if err := notificationhandler.Instance.ClearCandidate(authutils.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(notificationapimodels.ClearResponse{Success: true}))
}

// @Summary Company notifications
// @Tags Notifications
// @Description List active notifications of the current company
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.CompanyNotificationView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/company [get]
func (c *notificationApiController) listCompany(ctx *fiber.Ctx) error {
	list, err := notificationhandler.Instance.ListCompany(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Clear company notifications
// @Tags Notifications
// @Description Dismiss all notifications of the current company
// @Success 200 {object} apimodels.Response{data=notificationapimodels.ClearResponse}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/company/clear [post]
func (c *notificationApiController) clearCompany(ctx *fiber.Ctx) error {
	if err := notificationhandler.Instance.ClearCompany(authutils.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(notificationapimodels.ClearResponse{Success: true}))
}
