package apiv1

import (
	"connect-skills-backend/controllers"
	favoritehandler "connect-skills-backend/lib/favorite"
	authutils "connect-skills-backend/lib/utils/auth-utils"
	"connect-skills-backend/middleware"
	apimodels "connect-skills-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type favoriteApiController struct {
	controllers.BaseAPIController
}

func InitFavoriteApiRouters(app *fiber.App) {
	controller := favoriteApiController{}
	app.Route("favorites", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Post(":vacancyId/toggle", controller.toggle)
	})
}

// @Summary Favorite vacancies
// @Tags Favorites
// @Description List favorite vacancies of the current candidate
// @Success 200 {object} apimodels.Response{data=[]vacancyapimodels.VacancyView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/favorites [get]
func (c *favoriteApiController) list(ctx *fiber.Ctx) error {
	list, err := favoritehandler.Instance.List(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Toggle favorite
// @Tags Favorites
// @Description Add the vacancy to favorites, a repeated call removes it
// @Param	vacancyId		path		string	true	"vacancy id"
// @Success 200 {object} apimodels.Response{data=bool}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/favorites/{vacancyId}/toggle [post]
func (c *favoriteApiController) toggle(ctx *fiber.Ctx) error {
	selected, err := favoritehandler.Instance.Toggle(authutils.GetUserID(ctx), ctx.Params("vacancyId"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(selected))
}
