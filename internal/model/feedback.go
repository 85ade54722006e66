package model

type Feedback struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type Page struct {
	Total     int        `json:"total"`
	Page      int        `json:"page"`
	PageSize  int        `json:"page_size"`
	Feedbacks []Feedback `json:"feedbacks"`
}

// Confirmation is what the notifier receives after a feedback is stored.
type Confirmation struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}
