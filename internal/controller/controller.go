package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/testhub/internal/dto"
	"github.com/lshigami/testhub/internal/service"
	"github.com/rs/zerolog/log"
)

// RespondError writes err as an ErrorResponse with the status that matches its
// kind. A duplicate submission is a 400 that carries the stored result id.
func RespondError(ctx *gin.Context, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unclassified service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Code: string(service.KindStore)})
		return
	}

	resp := dto.ErrorResponse{Error: svcErr.Message, Code: string(svcErr.Kind)}
	status := http.StatusInternalServerError
	switch svcErr.Kind {
	case service.KindValidation:
		status = http.StatusBadRequest
	case service.KindNotFound:
		status = http.StatusNotFound
	case service.KindForbidden:
		status = http.StatusForbidden
	case service.KindConflict:
		status = http.StatusBadRequest
		resultID := svcErr.ResultID
		resp.ResultID = &resultID
	case service.KindStore:
		resp.Error = svcErr.Error()
	}
	ctx.JSON(status, resp)
}

// BindJSON decodes the request body and answers 400 itself when it cannot.
func BindJSON(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error(), Code: string(service.KindValidation)})
		return false
	}
	return true
}

// APIIndex godoc
// @Summary API index
// @Description Health check listing the available endpoints
// @Tags Meta
// @Produce json
// @Success 200 {object} dto.APIIndexDTO
// @Router / [get]
func APIIndex(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIIndexDTO{
		Message: "Test Hub API",
		Version: "1.0",
		Endpoints: map[string]string{
			"login":        "/api/login",
			"tests":        "/api/tests",
			"create_test":  "/api/tests/create",
			"get_test":     "/api/tests/<test_id>",
			"delete_test":  "/api/tests/<test_id>/delete",
			"submit_test":  "/api/tests/<test_id>/submit",
			"test_results": "/api/results/<test_id>",
			"user_results": "/api/results/user/<user_id>",
			"result":       "/api/result/<result_id>",
		},
	})
}

func NoRoute(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "endpoint not found", Code: string(service.KindNotFound)})
}
