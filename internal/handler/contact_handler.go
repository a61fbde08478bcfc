package handler

import (
	"net/http"

	"github.com/certlab/certquiz-backend/internal/model"
	"github.com/certlab/certquiz-backend/internal/response"
	"github.com/certlab/certquiz-backend/internal/service"
	"github.com/certlab/certquiz-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// SubmitContact godoc
// POST /api/v1/contact
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req model.SubmitContactRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	msg, err := h.contactService.Submit(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"contact": msg})
}
