package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/testhub/internal/controller"
	"github.com/lshigami/testhub/internal/dto"
	"github.com/lshigami/testhub/internal/service"
)

type AuthController struct {
	userService service.UserService
}

func NewAuthController(userService service.UserService) *AuthController {
	return &AuthController{userService: userService}
}

// Login godoc
// @Summary Log in or register
// @Description Registers the id with the given name on first use. A returning id keeps its original name.
// @Tags User - Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequestDTO true "Participant id and display name"
// @Success 200 {object} dto.LoginResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing name or id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequestDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	user, err := c.userService.Login(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.LoginResponseDTO{Success: true, User: *user})
}
