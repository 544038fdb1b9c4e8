package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/admission/internal/controller"
	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/service"
	"github.com/rs/zerolog/log"
)

type ApplicationController struct {
	applicationService service.ApplicationService
}

func NewApplicationController(applicationService service.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// GetPage3 godoc
// @Summary Saved qualifications page
// @Description Returns only email and name_initial when nothing has been saved yet.
// @Tags Application
// @Produce json
// @Security TokenAuth
// @Success 200 {object} dto.Response{data=dto.Page3Data}
// @Failure 401 {object} dto.ErrorResponse
// @Router /application/page3/ [get]
func (c *ApplicationController) GetPage3(ctx *gin.Context) {
	data, err := c.applicationService.GetPage3(controller.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to load application")
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Status: dto.StatusSuccess, Data: data})
}

// SubmitPage3 godoc
// @Summary Save the qualifications page
// @Description The payload is validated again on the server; field errors come back under "errors".
// @Tags Application
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param page3 body dto.Page3Submission true "Cleaned qualifications page"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse
// @Router /application/page3/ [post]
func (c *ApplicationController) SubmitPage3(ctx *gin.Context) {
	var sub dto.Page3Submission
	if err := ctx.ShouldBindJSON(&sub); err != nil {
		log.Warn().Err(err).Uint("user_id", controller.UserID(ctx)).Msg("SubmitPage3: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Status: dto.StatusError, Message: "Invalid request body"})
		return
	}
	if err := c.applicationService.SubmitPage3(ctx.Request.Context(), controller.UserID(ctx), sub); err != nil {
		controller.RespondError(ctx, err, "Failed to save application")
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Status: dto.StatusSuccess, Message: "Qualifications saved"})
}
