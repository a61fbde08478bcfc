package handler

import (
	"net/http"

	"github.com/certlab/certquiz-backend/internal/middleware"
	"github.com/certlab/certquiz-backend/internal/model"
	"github.com/certlab/certquiz-backend/internal/response"
	"github.com/certlab/certquiz-backend/internal/service"
	"github.com/certlab/certquiz-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// QuizHandler handles quiz generation endpoints.
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// GenerateQuiz godoc
// POST /api/v1/quiz/generate
// Returns a quiz payload for the requested exam configuration. Once the
// request passes validation this endpoint always answers 200: generation
// failures are absorbed by the fallback bank inside the service.
func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.GenerateQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrMissingFields, fields)
		return
	}

	data := h.quizService.Generate(c.Request.Context(), claims.UserID, req)
	response.Success(c, http.StatusOK, data)
}
