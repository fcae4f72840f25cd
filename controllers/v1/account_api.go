package apiv1

import (
	"connect-skills-backend/controllers"
	accounthandler "connect-skills-backend/lib/account"
	authutils "connect-skills-backend/lib/utils/auth-utils"
	"connect-skills-backend/middleware"
	apimodels "connect-skills-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type accountApiController struct {
	controllers.BaseAPIController
}

func InitAccountApiRouters(app *fiber.App) {
	controller := accountApiController{}
	app.Route("account", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired()).Delete("", controller.deleteAccount)
	})
}

// @Summary Delete account
// @Tags Account
// @Description Permanently delete the account and everything it owns
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/account [delete]
func (c *accountApiController) deleteAccount(ctx *fiber.Ctx) error {
	userID := authutils.GetUserID(ctx)
	if err := accounthandler.Instance.DeleteAccount(ctx.UserContext(), userID); err != nil {
		return c.SendError(ctx, err)
	}
	// the cookie is dropped only once the deletion is committed
	authutils.ClearSessionCookie(ctx)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
