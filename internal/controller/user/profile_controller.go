package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/admission/internal/controller"
	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/service"
)

type ProfileController struct {
	profileService service.ProfileService
	previewService service.PreviewService
}

func NewProfileController(profileService service.ProfileService, previewService service.PreviewService) *ProfileController {
	return &ProfileController{profileService: profileService, previewService: previewService}
}

// CurrentUserEmail godoc
// @Summary Email of the logged-in user
// @Tags Profile
// @Produce json
// @Security TokenAuth
// @Success 200 {object} dto.Response{data=dto.EmailData}
// @Failure 401 {object} dto.ErrorResponse
// @Router /current-user-email/ [get]
func (c *ProfileController) CurrentUserEmail(ctx *gin.Context) {
	profile, err := c.profileService.Profile(controller.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to load user")
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Status: dto.StatusSuccess, Data: dto.EmailData{Email: profile.Email}})
}

// UserProfile godoc
// @Summary Profile of the logged-in user
// @Tags Profile
// @Produce json
// @Security TokenAuth
// @Success 200 {object} dto.Response{data=dto.UserProfile}
// @Failure 401 {object} dto.ErrorResponse
// @Router /user-profile/ [get]
func (c *ProfileController) UserProfile(ctx *gin.Context) {
	profile, err := c.profileService.Profile(controller.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to load profile")
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Status: dto.StatusSuccess, Data: profile})
}

// Autofill godoc
// @Summary Identity data pre-filled into later pages
// @Tags Profile
// @Produce json
// @Security TokenAuth
// @Success 200 {object} dto.Response{data=dto.AutofillData}
// @Failure 401 {object} dto.ErrorResponse
// @Router /get-autofill-application/ [get]
func (c *ProfileController) Autofill(ctx *gin.Context) {
	data, err := c.profileService.Autofill(controller.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to load autofill data")
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Status: dto.StatusSuccess, Data: data})
}

// Preview godoc
// @Summary Everything entered so far, for the preview page
// @Tags Profile
// @Produce json
// @Security TokenAuth
// @Success 200 {object} dto.Response{data=dto.PreviewData}
// @Failure 401 {object} dto.ErrorResponse
// @Router /application/preview/ [get]
func (c *ProfileController) Preview(ctx *gin.Context) {
	data, err := c.previewService.Preview(ctx.Request.Context(), controller.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to load preview")
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Status: dto.StatusSuccess, Data: data})
}
