package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/testhub/internal/controller"
	"github.com/lshigami/testhub/internal/dto"
	"github.com/lshigami/testhub/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	adminTestService service.AdminTestService
}

func NewAdminTestController(adminTestService service.AdminTestService) *AdminTestController {
	return &AdminTestController{adminTestService: adminTestService}
}

// CreateTest godoc
// @Summary (Admin) Create a new test
// @Description Creates a test with its questions and answer options in one step. Questions without text or options are skipped.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param test_data body dto.TestCreateDTO true "Test creation data including questions"
// @Success 200 {object} dto.TestCreatedResponseDTO "Test created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data (e.g., missing name, no questions, bad duration)"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/create [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}

	testID, err := c.adminTestService.CreateTest(ctx.Request.Context(), req)
	if err != nil {
		log.Warn().Err(err).Str("name", req.Name).Int("questionCount", len(req.Questions)).Msg("Admin CreateTest: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TestCreatedResponseDTO{
		Success: true,
		TestID:  testID,
		Message: "Test created successfully",
	})
}

// DeleteTest godoc
// @Summary (Admin) Delete a test
// @Description Deletes a test together with its questions, answer options and results. Requires the delete code.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param test_id path string true "Test ID"
// @Param body body dto.TestDeleteDTO true "Delete code"
// @Success 200 {object} dto.SuccessResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Wrong delete code"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id}/delete [delete]
func (c *AdminTestController) DeleteTest(ctx *gin.Context) {
	testID := ctx.Param("test_id")

	var req dto.TestDeleteDTO
	if ctx.Request.ContentLength != 0 && !controller.BindJSON(ctx, &req) {
		return
	}

	if err := c.adminTestService.DeleteTest(ctx.Request.Context(), testID, req.Code); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponseDTO{Success: true, Message: "Test deleted successfully"})
}
