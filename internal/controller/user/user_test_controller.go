package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/testhub/internal/controller"
	"github.com/lshigami/testhub/internal/dto"
	"github.com/lshigami/testhub/internal/service"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	userTestService       service.UserTestService
	testSubmissionService service.TestSubmissionService
}

func NewUserTestController(uts service.UserTestService, tss service.TestSubmissionService) *UserTestController {
	return &UserTestController{
		userTestService:       uts,
		testSubmissionService: tss,
	}
}

// GetAllTests godoc
// @Summary (User) List all available tests
// @Description Get every test's metadata, newest first. Questions are not included.
// @Tags User - Tests & Results
// @Produce json
// @Success 200 {object} dto.TestListResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.userTestService.GetAllTests(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("User GetAllTests: Service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TestListResponseDTO{Tests: tests})
}

// GetTestDetails godoc
// @Summary (User) Get details of a specific test
// @Description Get a test with all its questions and answer options, without the correct answers.
// @Tags User - Tests & Results
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.TestDetailResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	testID := ctx.Param("test_id")
	testDetails, err := c.userTestService.GetTestDetails(ctx.Request.Context(), testID)
	if err != nil {
		log.Warn().Err(err).Str("testID", testID).Msg("User GetTestDetails: Test not found or service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TestDetailResponseDTO{Test: *testDetails})
}

// SubmitTestAttempt godoc
// @Summary (User) Submit answers for a test
// @Description Scores the submitted answers. Each user can submit a given test only once.
// @Tags User - Tests & Results
// @Accept json
// @Produce json
// @Param test_id path string true "ID of the Test being submitted"
// @Param submission_data body dto.TestSubmitDTO true "User ID and list of answers"
// @Success 200 {object} dto.SubmitResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing user_id, or already submitted (result_id is set)"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Error processing submission"
// @Router /tests/{test_id}/submit [post]
func (c *UserTestController) SubmitTestAttempt(ctx *gin.Context) {
	testID := ctx.Param("test_id")

	var req dto.TestSubmitDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}

	log.Info().Str("testID", testID).Str("userID", req.UserID).Int("answerCount", len(req.Answers)).Msg("Received request to submit test")

	result, err := c.testSubmissionService.SubmitTest(ctx.Request.Context(), testID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SubmitResponseDTO{Success: true, Result: *result})
}
