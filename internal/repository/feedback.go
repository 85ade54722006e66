package repository

import (
	"context"

	"feedback_dashboard/internal/model"
)

// FeedbackRepository is an append-only feedback log. Submit assigns the next
// id. Snapshot returns every record in ascending id order; the returned slice
// must not be modified and is unaffected by later submissions.
type FeedbackRepository interface {
	Submit(ctx context.Context, email, message string) (model.Feedback, error)
	Snapshot(ctx context.Context) ([]model.Feedback, error)
}
