package mysql

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"feedback_dashboard/internal/db"
	"feedback_dashboard/internal/model"
)

func (s *Store) Submit(ctx context.Context, email, message string) (model.Feedback, error) {
	result, err := s.queries.CreateFeedback(ctx, db.CreateFeedbackParams{
		Email:   email,
		Message: message,
	})
	if err != nil {
		s.log.Error("sql create feedback failed", zap.String("email", email), zap.Error(err))
		return model.Feedback{}, fmt.Errorf("create feedback: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		s.log.Error("sql last insert id failed", zap.Error(err))
		return model.Feedback{}, fmt.Errorf("create feedback: %w", err)
	}
	return model.Feedback{ID: id, Email: email, Message: message}, nil
}

func (s *Store) Snapshot(ctx context.Context) ([]model.Feedback, error) {
	rows, err := s.queries.ListFeedbacks(ctx)
	if err != nil {
		s.log.Error("sql list feedbacks failed", zap.Error(err))
		return nil, fmt.Errorf("list feedbacks: %w", err)
	}

	result := make([]model.Feedback, 0, len(rows))
	for _, row := range rows {
		result = append(result, model.Feedback{
			ID:      row.ID,
			Email:   row.Email,
			Message: row.Message,
		})
	}
	return result, nil
}
