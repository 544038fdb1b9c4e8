package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/admission/internal/controller"
	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup godoc
// @Summary Create an applicant account
// @Tags Auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Account details"
// @Success 201 {object} dto.Response{data=dto.UserProfile}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /signup/ [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Signup: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Status: dto.StatusError, Message: "Invalid request body"})
		return
	}
	profile, err := c.authService.Signup(req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create account")
		return
	}
	ctx.JSON(http.StatusCreated, dto.Response{Status: dto.StatusSuccess, Data: profile, Message: "Account created"})
}

// Login godoc
// @Summary Log in and receive an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Bad credentials"
// @Router /login/ [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Status: dto.StatusError, Message: "Email and password are required"})
		return
	}
	resp, err := c.authService.Login(req)
	if err != nil {
		controller.RespondError(ctx, err, "Login failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
