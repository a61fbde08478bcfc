package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/certlab/certquiz-backend/internal/middleware"
	"github.com/certlab/certquiz-backend/internal/response"
	"github.com/certlab/certquiz-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HistoryHandler handles exam history retrieval and deletion.
type HistoryHandler struct {
	historyService *service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// ListHistory godoc
// GET /api/v1/history?page=1&per_page=20
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	items, total, err := h.historyService.List(c.Request.Context(), claims.UserID, page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"history": items}, response.NewPagination(page, perPage, total))
}

// GetHistory godoc
// GET /api/v1/history/:id
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	record, err := h.historyService.Get(c.Request.Context(), id, claims.UserID)
	if err != nil {
		h.writeHistoryError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"history": record})
}

// DeleteHistory godoc
// DELETE /api/v1/history/:id
func (h *HistoryHandler) DeleteHistory(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.historyService.Delete(c.Request.Context(), id, claims.UserID); err != nil {
		h.writeHistoryError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// GetStats godoc
// GET /api/v1/history/stats
func (h *HistoryHandler) GetStats(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	stats, err := h.historyService.Stats(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *HistoryHandler) writeHistoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHistoryNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrResultNotFound)
	case errors.Is(err, service.ErrNotRecordOwner):
		response.Fail(c, http.StatusForbidden, response.ErrNotOwner)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
