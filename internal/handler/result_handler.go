package handler

import (
	"errors"
	"net/http"

	"github.com/certlab/certquiz-backend/internal/middleware"
	"github.com/certlab/certquiz-backend/internal/model"
	"github.com/certlab/certquiz-backend/internal/response"
	"github.com/certlab/certquiz-backend/internal/service"
	"github.com/certlab/certquiz-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// ResultHandler handles quiz result submission.
type ResultHandler struct {
	resultService *service.ResultService
}

// NewResultHandler creates a new ResultHandler.
func NewResultHandler(resultService *service.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// SubmitResult godoc
// POST /api/v1/results
// Recomputes the score server-side from the submitted answers and persists
// the attempt atomically. Responds 201 with the stored history record.
func (h *ResultHandler) SubmitResult(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var res model.QuizResult
	if fields := validator.Bind(c, &res); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user := &model.User{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
	}

	history, err := h.resultService.Submit(c.Request.Context(), user, res)
	if err != nil {
		if errors.Is(err, service.ErrQuestionCountMismatch) || errors.Is(err, service.ErrInvalidTiming) {
			response.Fail(c, http.StatusBadRequest, response.ErrResultInvalid)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrStorageFailed)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"history": history})
}
