package dto

import "feedback_dashboard/internal/model"

type SubmitFeedbackRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type SubmitFeedbackResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Feedback model.Feedback `json:"feedback"`
}

// ListFeedbacksQuery keeps page numbers as strings so the controller can
// apply defaults and report which parameter was malformed.
type ListFeedbacksQuery struct {
	Page     string `form:"page" binding:"max=20"`
	PageSize string `form:"page_size" binding:"max=20"`
	Email    string `form:"email" binding:"max=320"`
	Token    string `form:"token"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
