package apiv1

import (
	"fmt"

	"connect-skills-backend/controllers"
	candidatehandler "connect-skills-backend/lib/candidate"
	pdfexport "connect-skills-backend/lib/export/pdf"
	filestorage "connect-skills-backend/lib/file-storage"
	authutils "connect-skills-backend/lib/utils/auth-utils"
	"connect-skills-backend/lib/utils/helpers"
	"connect-skills-backend/middleware"
	apimodels "connect-skills-backend/models/api"
	candidateapimodels "connect-skills-backend/models/api/candidate"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidate", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("profile", controller.getProfile)
		router.Put("profile", controller.updateProfile)
		router.Get("profile/pdf", controller.profilePdf)
		router.Post("resume", controller.uploadResume)
		router.Post("photo", controller.uploadPhoto)
	})
}

// @Summary Candidate profile
// @Tags Candidate
// @Description Get the current candidate profile
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile [get]
func (c *candidateApiController) getProfile(ctx *fiber.Ctx) error {
	resp, err := candidatehandler.Instance.GetByUserID(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update candidate profile
// @Tags Candidate
// @Description Update the current candidate profile
// @Param	body				body		candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile [put]
func (c *candidateApiController) updateProfile(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := candidatehandler.Instance.Update(authutils.GetUserID(ctx), payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Candidate profile card
// @Tags Candidate
// @Description Download the profile as a pdf card
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile/pdf [get]
func (c *candidateApiController) profilePdf(ctx *fiber.Ctx) error {
	view, err := candidatehandler.Instance.GetByUserID(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	photoName, photoBody, err := filestorage.Instance.GetCandidatePhoto(ctx.UserContext(), view.ID)
	if err != nil {
		// the card is still useful without the photo
		log.WithError(err).Warn("failed to load profile photo")
	}
	pdfFile, err := pdfexport.GenerateProfileCard(*view, photoName, photoBody)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="profile_%s.pdf"`, view.ID))
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}

// @Summary Upload resume
// @Tags Candidate
// @Description Upload the candidate resume
// @Param   file	formData	file	true	"resume file"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/resume [post]
func (c *candidateApiController) uploadResume(ctx *fiber.Ctx) error {
	view, err := candidatehandler.Instance.GetByUserID(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	fileBody, file, err := c.ReadFormFile(ctx, "file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	contentType := helpers.GetFileContentType(file)
	err = filestorage.Instance.UploadResume(ctx.UserContext(), view.ID, fileBody, file.Filename, contentType)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload profile photo
// @Tags Candidate
// @Description Upload the candidate profile photo
// @Param   file	formData	file	true	"photo file"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/photo [post]
func (c *candidateApiController) uploadPhoto(ctx *fiber.Ctx) error {
	view, err := candidatehandler.Instance.GetByUserID(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	fileBody, file, err := c.ReadFormFile(ctx, "file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	contentType := helpers.GetFileContentType(file)
	err = filestorage.Instance.UploadPhoto(ctx.UserContext(), view.ID, fileBody, file.Filename, contentType)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
