package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/admission/internal/controller"
	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/service"
)

type ApplicationController struct {
	adminService service.AdminApplicationService
}

func NewApplicationController(adminService service.AdminApplicationService) *ApplicationController {
	return &ApplicationController{adminService: adminService}
}

// ListApplications godoc
// @Summary (Admin) List submitted applications
// @Tags Admin - Applications
// @Produce json
// @Security TokenAuth
// @Success 200 {object} dto.Response{data=[]dto.ApplicationSummary}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Router /admin/applications [get]
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	list, err := c.adminService.List()
	if err != nil {
		controller.RespondError(ctx, err, "Failed to list applications")
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Status: dto.StatusSuccess, Data: list})
}

// GetApplication godoc
// @Summary (Admin) Full qualifications page of one application
// @Tags Admin - Applications
// @Produce json
// @Security TokenAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.Response{data=dto.Page3Data}
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /admin/applications/{id} [get]
func (c *ApplicationController) GetApplication(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Status: dto.StatusError, Message: "Invalid application ID format"})
		return
	}
	data, err := c.adminService.Get(uint(id))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to load application")
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Status: dto.StatusSuccess, Data: data})
}
