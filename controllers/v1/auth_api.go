package apiv1

import (
	"connect-skills-backend/controllers"
	authhandler "connect-skills-backend/lib/auth"
	authutils "connect-skills-backend/lib/utils/auth-utils"
	"connect-skills-backend/middleware"
	apimodels "connect-skills-backend/models/api"
	authapimodels "connect-skills-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Use(middleware.AuthorizationRequired()).Get("me", controller.me)
		router.Post("logout", controller.logout)
	})
}

// @Summary Log in
// @Tags Authentication
// @Description Authenticate and start a cookie session
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	token, err := authhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	authutils.SetSessionCookie(ctx, token)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Current session info
// @Tags Authentication
// @Description Get the current user
// @Success 200 {object} apimodels.Response{data=authapimodels.SessionResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := authhandler.Instance.Me(authutils.GetUserID(ctx))
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Log out
// @Tags Authentication
// @Description Drop the cookie session
// @Success 200 {object} apimodels.Response
// @router /api/v1/auth/logout [post]
func (c *authApiController) logout(ctx *fiber.Ctx) error {
	authutils.ClearSessionCookie(ctx)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
