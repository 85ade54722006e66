package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"feedback_dashboard/internal/domain"
	"feedback_dashboard/internal/http/dto"
	"feedback_dashboard/internal/http/resp"
	"feedback_dashboard/internal/query"
	"feedback_dashboard/internal/service/feedback"
)

type Handler struct {
	svc *feedback.Service
	log *zap.Logger
}

func NewHandler(svc *feedback.Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, log: logger}
}

func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "invalid json"})
		return
	}
	created, err := h.svc.Submit(c.Request.Context(), req.Email, req.Message)
	if err != nil {
		h.writeError(c, err, "failed to submit feedback")
		return
	}
	c.JSON(http.StatusCreated, dto.SubmitFeedbackResponse{
		Success:  true,
		Message:  resp.MessageSubmitted,
		Feedback: created,
	})
}

func (h *Handler) ListFeedbacks(c *gin.Context) {
	// The token is checked before anything else so a bad caller learns
	// nothing about which parameters would have been accepted.
	token := c.Query("token")
	if err := h.svc.Authorize(token); err != nil {
		h.writeError(c, err, "")
		return
	}

	var q dto.ListFeedbacksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeError(c, domain.ErrInvalidQuery, "")
		return
	}

	page, err := intParam(q.Page, domain.DefaultPage, domain.ErrInvalidPage)
	if err != nil {
		h.writeError(c, err, "")
		return
	}
	pageSize, err := intParam(q.PageSize, domain.DefaultPageSize, domain.ErrInvalidPageSize)
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	result, err := h.svc.List(c.Request.Context(), token, query.Params{
		Email:    q.Email,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.writeError(c, err, "failed to list feedbacks")
		return
	}
	c.JSON(http.StatusOK, result)
}

func intParam(raw string, def int, invalid error) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid
	}
	return n, nil
}

func (h *Handler) writeError(c *gin.Context, err error, internalMessage string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Code:    resp.CodeValidation,
			Message: verr.Error(),
			Field:   verr.Field,
		})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Code: resp.CodeUnauthorized, Message: resp.MessageUnauthorized})
	default:
		h.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: internalMessage})
	}
}
