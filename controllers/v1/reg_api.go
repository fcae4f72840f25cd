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

type regApiController struct {
	controllers.BaseAPIController
}

func InitRegApiRouters(app *fiber.App) {
	controller := regApiController{}
	app.Route("reg", func(router fiber.Router) {
		router.Post("signup", controller.signup)
		router.Get("verify/:code", controller.verifyEmail)
		router.Use(middleware.AuthorizationRequired()).Post("resend-verification", controller.resendVerification)
	})
}

// @Summary Register a new account
// @Tags Registration
// @Description Register a new candidate or company account
// @Param	body				body		authapimodels.SignupRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reg/signup [post]
func (c *regApiController) signup(ctx *fiber.Ctx) error {
	var payload authapimodels.SignupRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := authhandler.Instance.Signup(payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Verify email address
// @Tags Registration
// @Description Verify email address by the emailed code
// @Param	code				path		string	true	"verification code"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reg/verify/{code} [get]
func (c *regApiController) verifyEmail(ctx *fiber.Ctx) error {
	code := ctx.Params("code")
	if code == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("verification code is required"))
	}
	if err := authhandler.Instance.VerifyEmail(code); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Resend verification email
// @Tags Registration
// @Description Resend verification email to the current user
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reg/resend-verification [post]
func (c *regApiController) resendVerification(ctx *fiber.Ctx) error {
	userID := authutils.GetUserID(ctx)
	if err := authhandler.Instance.ResendVerification(userID); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
