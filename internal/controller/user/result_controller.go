package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/testhub/internal/controller"
	"github.com/lshigami/testhub/internal/dto"
	"github.com/lshigami/testhub/internal/service"
	"github.com/rs/zerolog/log"
)

type ResultController struct {
	resultService service.ResultService
}

func NewResultController(resultService service.ResultService) *ResultController {
	return &ResultController{resultService: resultService}
}

// GetTestResults godoc
// @Summary Results of a test
// @Description All results for a test, newest first, with each participant's name.
// @Tags User - Tests & Results
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.TestResultsResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results/{test_id} [get]
func (c *ResultController) GetTestResults(ctx *gin.Context) {
	resp, err := c.resultService.GetTestResults(ctx.Request.Context(), ctx.Param("test_id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetUserResults godoc
// @Summary Results of a user
// @Description All results of a participant, newest first, with each test's name.
// @Tags User - Tests & Results
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.UserResultsResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results/user/{user_id} [get]
func (c *ResultController) GetUserResults(ctx *gin.Context) {
	results, err := c.resultService.GetUserResults(ctx.Request.Context(), ctx.Param("user_id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UserResultsResponseDTO{Results: results})
}

// GetResult godoc
// @Summary Get one result
// @Description A single result with the participant's and the test's names.
// @Tags User - Tests & Results
// @Produce json
// @Param result_id path int true "Result ID"
// @Success 200 {object} dto.ResultDetailResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /result/{result_id} [get]
func (c *ResultController) GetResult(ctx *gin.Context) {
	raw := ctx.Param("result_id")
	resultID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		// A non-numeric id can never match a stored result.
		log.Debug().Str("resultID", raw).Msg("GetResult: non-numeric result id")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "result not found with ID " + raw, Code: string(service.KindNotFound)})
		return
	}

	detail, err := c.resultService.GetResult(ctx.Request.Context(), uint(resultID))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResultDetailResponseDTO{Result: *detail})
}
